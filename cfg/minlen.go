package cfg

// Precompute computes, for every non-terminal, the minimum length of a
// terminal string it derives. It iterates over all rules until a complete
// pass does not improve any entry. Rules referencing a non-terminal without
// an entry are skipped for the pass in question.
//
// Non-terminals which never get an entry (e.g., without a non-recursive
// base case) have no minimum length. Precompute may be called repeatedly;
// every call starts from scratch.
func (g *Grammar) Precompute() {
	g.minLength = make(map[*Symbol]int, len(g.nonterms))
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
	RULES:
		for _, r := range g.rules {
			l := 0
			for _, A := range r.rhs {
				if A.IsTerminal() {
					l++
					continue
				}
				m, ok := g.minLength[A]
				if !ok {
					continue RULES // not yet evaluable
				}
				l += m
			}
			if m, ok := g.minLength[r.LHS]; !ok || l < m {
				g.minLength[r.LHS] = l
				changed = true
			}
		}
	}
	g.analyzed = true
	tracer().Debugf("minimum lengths of %s stable after %d passes", g.Name, passes)
}

// IsPrecomputed returns true if Precompute has been called since the last
// change of the grammar.
func (g *Grammar) IsPrecomputed() bool {
	return g.analyzed
}

// MinLength returns the minimum length of a terminal string derivable from
// symbol A. For terminals this is 1. For non-terminals the second return
// value is false if no minimum length is known; this includes grammars
// not yet precomputed.
func (g *Grammar) MinLength(A *Symbol) (int, bool) {
	if A == nil {
		return 0, false
	}
	if A.IsTerminal() {
		return 1, true
	}
	m, ok := g.minLength[A]
	return m, ok
}

// Unproductive returns the non-terminals without a minimum length, sorted by
// name. A parser trying a rule with one of them on its right hand side
// fails with unger.ErrUnknownMinLength.
func (g *Grammar) Unproductive() []*Symbol {
	var syms []*Symbol
	g.EachNonTerminal(func(A *Symbol) {
		if _, ok := g.minLength[A]; !ok {
			syms = append(syms, A)
		}
	})
	return syms
}
