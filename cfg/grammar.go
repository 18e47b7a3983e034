package cfg

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Value is a serial number, unique among the symbols of the same kind
// (non-terminals and terminals are numbered separately, starting at 0).
type Symbol struct {
	Name     string
	Value    int
	terminal bool
}

// IsTerminal returns true if this symbol represents a terminal.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

func (A *Symbol) String() string {
	return A.Name
}

// IsNonTerminalName is the naming convention for grammar text: a symbol is a
// non-terminal iff its first character is an uppercase letter.
func IsNonTerminalName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
type Rule struct {
	Serial int       // order number of this rule within a grammar
	LHS    *Symbol   // symbol of left hand side
	rhs    []*Symbol // right hand side symbols
}

// RHS gets the right hand side of a rule as a slice. Clients must not
// modify it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEps returns true if this is an epsilon-rule.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s] ::= [", r.LHS))
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context-free grammar. Grammars are
// created with a GrammarBuilder or read from text.
//
// Rules are kept in declaration order. Parsers try the rules of a
// non-terminal in this order, which determines the order in which
// derivations are produced.
type Grammar struct {
	Name      string
	rules     []*Rule
	symbols   map[string]*Symbol
	nonterms  []*Symbol // indexed by Value
	terms     []*Symbol // indexed by Value
	ntNames   *treeset.Set
	tNames    *treeset.Set
	rulesFor  map[*Symbol][]*Rule
	minLength map[*Symbol]int
	analyzed  bool
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:     name,
		rules:    make([]*Rule, 0, 16),
		symbols:  make(map[string]*Symbol),
		ntNames:  treeset.NewWithStringComparator(),
		tNames:   treeset.NewWithStringComparator(),
		rulesFor: make(map[*Symbol][]*Rule),
	}
}

// Start returns the start symbol of the grammar, i.e. the left hand side
// of the first rule. It returns nil for an empty grammar.
func (g *Grammar) Start() *Symbol {
	if len(g.rules) == 0 {
		return nil
	}
	return g.rules[0].LHS
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all the rules in declaration order. Clients must not
// modify the slice.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RulesFor returns the rules with left hand side A, in declaration order.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	return g.rulesFor[A]
}

// SymbolByName gets a symbol (terminal or non-terminal) for a given name,
// or nil if the name is unknown.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// Terminal returns the terminal with the given name, or nil.
func (g *Grammar) Terminal(name string) *Symbol {
	if A := g.symbols[name]; A != nil && A.IsTerminal() {
		return A
	}
	return nil
}

// NonTerminal returns the non-terminal with the given name, or nil.
func (g *Grammar) NonTerminal(name string) *Symbol {
	if A := g.symbols[name]; A != nil && !A.IsTerminal() {
		return A
	}
	return nil
}

// NonTerminalCount returns the number of non-terminals in the grammar.
func (g *Grammar) NonTerminalCount() int {
	return len(g.nonterms)
}

// TerminalCount returns the number of terminals in the grammar.
func (g *Grammar) TerminalCount() int {
	return len(g.terms)
}

// NonTerminals returns the non-terminals, sorted by name.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.sorted(g.ntNames)
}

// Terminals returns the terminals, sorted by name.
func (g *Grammar) Terminals() []*Symbol {
	return g.sorted(g.tNames)
}

// EachNonTerminal iterates over all non-terminals of the grammar, in
// order of their names.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol)) {
	for _, A := range g.NonTerminals() {
		mapper(A)
	}
}

// EachTerminal iterates over all terminals of the grammar, in order of
// their names.
func (g *Grammar) EachTerminal(mapper func(A *Symbol)) {
	for _, A := range g.Terminals() {
		mapper(A)
	}
}

func (g *Grammar) sorted(names *treeset.Set) []*Symbol {
	syms := make([]*Symbol, 0, names.Size())
	it := names.Iterator()
	for it.Next() {
		syms = append(syms, g.symbols[it.Value().(string)])
	}
	return syms
}

// Dump is a debugging helper: dump symbols and rules to the tracer (debug level).
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("non-terminals: %v", g.ntNames.Values())
	tracer().Debugf("terminals    : %v", g.tNames.Values())
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	if g.analyzed {
		g.EachNonTerminal(func(A *Symbol) {
			if n, ok := g.minLength[A]; ok {
				tracer().Debugf("min|%s| = %d", A, n)
			} else {
				tracer().Debugf("min|%s| = ∞", A)
			}
		})
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Symbol table ----------------------------------------------------------

// resolveOrDefine finds a symbol, or defines a new one of the requested kind.
// Returns an error if the name is already in use for the other kind of
// symbol.
func (g *Grammar) resolveOrDefine(name string, terminal bool) (*Symbol, error) {
	if A, ok := g.symbols[name]; ok {
		if A.terminal != terminal {
			return nil, fmt.Errorf("symbol %q used both as terminal and as non-terminal", name)
		}
		return A, nil
	}
	A := &Symbol{Name: name, terminal: terminal}
	if terminal {
		A.Value = len(g.terms)
		g.terms = append(g.terms, A)
		g.tNames.Add(name)
	} else {
		A.Value = len(g.nonterms)
		g.nonterms = append(g.nonterms, A)
		g.ntNames.Add(name)
	}
	g.symbols[name] = A
	return A, nil
}

func (g *Grammar) appendRule(r *Rule) {
	r.Serial = len(g.rules)
	g.rules = append(g.rules, r)
	g.rulesFor[r.LHS] = append(g.rulesFor[r.LHS], r)
	g.analyzed = false
}
