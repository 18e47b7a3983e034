package cfg

import (
	"errors"
	"fmt"

	"github.com/npillmayer/unger"
)

// GrammarBuilder is a builder type for grammars.
// Errors during rule construction are remembered and reported by Grammar().
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(gname)}
}

// RuleBuilder is a builder type for rules. It is created by GrammarBuilder.LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb}
	if s == "" {
		gb.fail(errors.New("empty left hand side"))
		return rb
	}
	rb.lhs = gb.define(s, false)
	return rb
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	return rb.append(s, false)
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	return rb.append(s, true)
}

// Sym appends a symbol, classified by naming convention (see IsNonTerminalName).
func (rb *RuleBuilder) Sym(s string) *RuleBuilder {
	return rb.append(s, !IsNonTerminalName(s))
}

func (rb *RuleBuilder) append(s string, terminal bool) *RuleBuilder {
	if s == "" {
		rb.gb.fail(errors.New("empty symbol name"))
		return rb
	}
	if A := rb.gb.define(s, terminal); A != nil {
		rb.rhs = append(rb.rhs, A)
	}
	return rb
}

// End a rule.
func (rb *RuleBuilder) End() *Rule {
	if rb.lhs == nil { // error already recorded
		return nil
	}
	r := &Rule{LHS: rb.lhs, rhs: rb.rhs}
	rb.gb.g.appendRule(r)
	return r
}

// Epsilon sets epsilon as the RHS of a production.
// This must be called directly after rb.LHS(...).
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.fail(fmt.Errorf("epsilon for %s after right hand side symbols", rb.lhs))
		return nil
	}
	return rb.End()
}

// Grammar returns the (completed) grammar, or the first error encountered
// while building it. Errors wrap unger.ErrMalformedProduction.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if gb.g.Size() == 0 {
		return nil, fmt.Errorf("grammar %s has no rules: %w", gb.g.Name, unger.ErrMalformedProduction)
	}
	return gb.g, nil
}

func (gb *GrammarBuilder) define(s string, terminal bool) *Symbol {
	A, err := gb.g.resolveOrDefine(s, terminal)
	if err != nil {
		gb.fail(err)
	}
	return A
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		tracer().Errorf("grammar %s: %v", gb.g.Name, err)
		gb.err = fmt.Errorf("grammar %s: %v: %w", gb.g.Name, err, unger.ErrMalformedProduction)
	}
}
