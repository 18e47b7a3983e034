package forest

import (
	"fmt"

	"github.com/npillmayer/unger"
)

// Listener is a type for walking a derivation forest.
//
// EnterRule is called for every span-qualified name on the way down, together
// with the right hand side of the rule selected for it. It returns a boolean
// value indicating if the traversal should continue to the children of this
// node. ExitRule receives the values of the children, if they have been
// traversed, and Terminal is called for every input token.
// ExitRule and Terminal may return user-defined values to be propagated
// upwards.
type Listener interface {
	EnterRule(name string, rhs []string, ctxt RuleCtxt) bool
	ExitRule(name string, values []interface{}, ctxt RuleCtxt) interface{}
	Terminal(lexeme string, ctxt RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Symbol       string     // symbol name without span; empty for epsilon placeholders
	Span         unger.Span // span of input tokens covered
	Level        int        // nesting level
	Alternatives int        // number of rules for this name, 0 for terminals
	Epsilon      bool       // placeholder for an empty derivation
}

// Walk traverses the derivation below name top-down, calling listener methods
// for every node. For ambiguous names the first rule not leading to a cyclic
// derivation is selected. Walk returns the value of the listener's ExitRule for
// name, or an error if name does not have an acyclic derivation.
func (f *Forest) Walk(name string, listener Listener) (interface{}, error) {
	if !f.Has(name) {
		return nil, fmt.Errorf("no derivation for %s", name)
	}
	if !f.resolve(name, make(map[string]bool)) {
		return nil, fmt.Errorf("derivation of %s is cyclic", name)
	}
	tracer().Debugf("walking derivation of %s", name)
	return f.walk(name, listener, 0), nil
}

func (f *Forest) walk(name string, listener Listener, level int) interface{} {
	r := f.Rule(f.lhs[name][f.choices[name]])
	sym, span, _ := SplitName(name)
	ctxt := RuleCtxt{
		Symbol:       sym,
		Span:         span,
		Level:        level,
		Alternatives: f.Alternatives(name),
		Epsilon:      r.IsEpsilon(),
	}
	var values []interface{}
	if ctxt.Epsilon {
		listener.EnterRule(name, nil, ctxt)
		return listener.ExitRule(name, values, ctxt)
	}
	if listener.EnterRule(name, r.RHS, ctxt) {
		values = make([]interface{}, len(r.RHS))
		for i, child := range r.RHS {
			if f.Has(child) {
				values[i] = f.walk(child, listener, level+1)
				continue
			}
			values[i] = listener.Terminal(child, RuleCtxt{
				Symbol: child,
				Span:   span,
				Level:  level + 1,
			})
		}
	}
	return listener.ExitRule(name, values, ctxt)
}

// Yield returns the input tokens derived from name, using the same selection
// of alternatives as Walk.
func (f *Forest) Yield(name string) ([]string, error) {
	if !f.Has(name) {
		return nil, fmt.Errorf("no derivation for %s", name)
	}
	if !f.resolve(name, make(map[string]bool)) {
		return nil, fmt.Errorf("derivation of %s is cyclic", name)
	}
	return f.yield(name, []string{}), nil
}

func (f *Forest) yield(name string, tokens []string) []string {
	r := f.Rule(f.lhs[name][f.choices[name]])
	if r.IsEpsilon() {
		return tokens
	}
	for _, child := range r.RHS {
		if f.Has(child) {
			tokens = f.yield(child, tokens)
		} else {
			tokens = append(tokens, child)
		}
	}
	return tokens
}

// resolve selects an alternative for name and, recursively, for all names
// below it, such that no name is its own descendant. Selections are
// remembered until the forest changes. Once fixed, a selection never refers
// to a name which was unresolved at that time, therefore selections are
// acyclic as a whole.
func (f *Forest) resolve(name string, active map[string]bool) bool {
	if f.choices == nil {
		f.choices = make(map[string]int)
	}
	if _, ok := f.choices[name]; ok {
		return true
	}
	if active[name] {
		return false
	}
	active[name] = true
	defer delete(active, name)
	for i, pos := range f.lhs[name] {
		ok := true
		for _, child := range f.Rule(pos).RHS {
			if f.Has(child) && !f.resolve(child, active) {
				ok = false
				break
			}
		}
		if ok {
			if i > 0 {
				tracer().Debugf("%s: alternative %d selected", name, i)
			}
			f.choices[name] = i
			return true
		}
	}
	return false
}
