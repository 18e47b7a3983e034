package forest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/unger"
)

// Epsilon is the right hand side of placeholder rules for empty derivations.
const Epsilon = "epsilon"

// Rule is a rule of a derivation forest. Names are span-qualified symbol
// names, except for right hand sides of terminal rules and placeholder rules.
type Rule struct {
	LHS string
	RHS []string
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(r.RHS, " "))
}

// IsEpsilon returns true if r is a placeholder rule for an empty derivation.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 1 && r.RHS[0] == Epsilon && strings.HasPrefix(r.LHS, "_")
}

// Forest is a derivation forest, i.e. a list of rules without duplicates.
// Rules are kept in the order of their first insertion.
//
// The zero value is not usable; create forests with New.
type Forest struct {
	rules   *arraylist.List     // of *Rule
	hashes  map[string]struct{} // rule signatures
	lhs     map[string][]int    // rule positions by LHS name
	choices map[string]int      // acyclic alternatives, computed on demand
}

// New creates an empty derivation forest.
func New() *Forest {
	return &Forest{
		rules:  arraylist.New(),
		hashes: make(map[string]struct{}),
		lhs:    make(map[string][]int),
	}
}

// Add appends a rule, if it is not already part of the forest.
// It returns false for duplicates.
func (f *Forest) Add(lhs string, rhs ...string) bool {
	r := &Rule{LHS: lhs, RHS: rhs}
	sig := string(structhash.Md5(*r, 1))
	if _, ok := f.hashes[sig]; ok {
		return false
	}
	f.hashes[sig] = struct{}{}
	f.lhs[lhs] = append(f.lhs[lhs], f.rules.Size())
	f.rules.Add(r)
	f.choices = nil
	return true
}

// Merge appends all rules of another forest, in order, skipping duplicates.
func (f *Forest) Merge(other *Forest) {
	if other == nil {
		return
	}
	it := other.rules.Iterator()
	for it.Next() {
		r := it.Value().(*Rule)
		f.Add(r.LHS, r.RHS...)
	}
}

// Size returns the number of rules.
func (f *Forest) Size() int {
	if f == nil {
		return 0
	}
	return f.rules.Size()
}

// IsEmpty returns true if the forest has no rules. For the result of
// deriving a span this means the span is not derivable.
func (f *Forest) IsEmpty() bool {
	return f.Size() == 0
}

// Rule returns rule number i.
func (f *Forest) Rule(i int) *Rule {
	r, ok := f.rules.Get(i)
	if !ok {
		return nil
	}
	return r.(*Rule)
}

// Rules returns all rules in order.
func (f *Forest) Rules() []*Rule {
	rules := make([]*Rule, f.Size())
	for i := range rules {
		rules[i] = f.Rule(i)
	}
	return rules
}

// Has returns true if name is the left hand side of at least one rule.
func (f *Forest) Has(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.lhs[name]
	return ok
}

// RulesFor returns the rules with left hand side name, in order.
func (f *Forest) RulesFor(name string) []*Rule {
	positions := f.lhs[name]
	rules := make([]*Rule, len(positions))
	for i, pos := range positions {
		rules[i] = f.Rule(pos)
	}
	return rules
}

// Alternatives returns the number of rules for name. A value greater than 1
// signals an ambiguity.
func (f *Forest) Alternatives(name string) int {
	return len(f.lhs[name])
}

// WriteTo writes the forest to w, one line "lhs --> rhs" per right hand
// side symbol of every rule.
func (f *Forest) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, r := range f.Rules() {
		for _, sym := range r.RHS {
			k, err := fmt.Fprintf(bw, "%s --> %s\n", r.LHS, sym)
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
	}
	return n, bw.Flush()
}

func (f *Forest) String() string {
	var b strings.Builder
	f.WriteTo(&b)
	return b.String()
}

// SplitName splits a span-qualified name into the symbol name and the span.
// For placeholders of empty derivations, the symbol name is empty.
func SplitName(name string) (string, unger.Span, bool) {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return name, unger.Span{}, false
	}
	length, err := strconv.Atoi(name[i+1:])
	if err != nil || length < 0 {
		return name, unger.Span{}, false
	}
	j := strings.LastIndexByte(name[:i], '_')
	if j < 0 {
		return name, unger.Span{}, false
	}
	start, err := strconv.ParseUint(name[j+1:i], 10, 64)
	if err != nil {
		return name, unger.Span{}, false
	}
	return name[:j], unger.SpanOf(start, length), true
}
