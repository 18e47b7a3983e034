package engine

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/cfg"
	"github.com/npillmayer/unger/forest"
)

// Sentence is a run of input tokens, starting at a 1-based position of
// the complete input. The position is used for naming only.
type Sentence struct {
	Tokens []string
	Start  uint64
}

// Span returns the span of input positions covered by a sentence.
func (s Sentence) Span() unger.Span {
	return unger.SpanOf(s.Start, len(s.Tokens))
}

// Parser is an Unger parser for a context-free grammar.
// Parsers may be re-used for more than one input, but not concurrently.
type Parser struct {
	g        *cfg.Grammar
	budget   int
	maxDepth int
}

// Option configures a parser.
type Option func(p *Parser)

// Budget limits the number of derivation steps of a parse, i.e. calls
// of DeriveSpan. A parse exceeding the budget fails with an error wrapping
// unger.ErrResourceExhausted. A value of 0 means no limit.
//
// The default is taken from configuration key "unger.budget".
func Budget(n int) Option {
	return func(p *Parser) {
		p.budget = n
	}
}

// MaxDepth limits the nesting of derivation steps of a parse. A parse
// exceeding it fails with an error wrapping unger.ErrResourceExhausted.
// A value of 0 means no limit.
//
// The default is taken from configuration key "unger.maxdepth".
func MaxDepth(d int) Option {
	return func(p *Parser) {
		p.maxDepth = d
	}
}

// NewParser creates a parser for grammar g.
func NewParser(g *cfg.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:        g,
		budget:   gconf.GetInt("unger.budget"),
		maxDepth: gconf.GetInt("unger.maxdepth"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the result of a parse.
type Result struct {
	Forest   *forest.Forest // derivations found, possibly empty
	Root     string         // span-qualified name of the start symbol covering the input
	Accepted bool           // is there a derivation for Root?
	Stats    Stats
}

// Parse parses a sequence of terminals. If the grammar has not been
// precomputed yet, Parse will do it.
//
// Not finding a derivation is not an error, but signalled by
// Result.Accepted. Errors are returned for tokens which are not terminals of
// the grammar, for non-terminals without minimum length
// (unger.ErrUnknownMinLength) and for parses exceeding the parser's limits
// (unger.ErrResourceExhausted).
func (p *Parser) Parse(tokens []string) (*Result, error) {
	for i, tok := range tokens {
		if p.g.Terminal(tok) == nil {
			return nil, fmt.Errorf("token #%d %q: %w", i+1, tok, unger.ErrUnknownTerminal)
		}
	}
	if !p.g.IsPrecomputed() {
		p.g.Precompute()
	}
	start := p.g.Start()
	ctx := NewContext(len(tokens))
	ctx.budget, ctx.maxDepth = p.budget, p.maxDepth
	input := Sentence{Tokens: tokens, Start: 1}
	f, err := p.DeriveSpan(input, start, ctx)
	if err != nil {
		tracer().Infof("parse aborted after %d steps", ctx.Stats.Calls)
		return nil, err
	}
	root := input.Span().QualifiedName(start.Name)
	res := &Result{
		Forest:   f,
		Root:     root,
		Accepted: f.Has(root),
		Stats:    ctx.Stats,
	}
	if res.Accepted {
		tracer().Infof("input of length %d accepted, %d rules", len(tokens), f.Size())
	} else {
		tracer().Infof("input of length %d does not parse", len(tokens))
	}
	tracer().Debugf("stats: %v", ctx.Stats)
	return res, nil
}

// ParseTokens parses a sequence of input tokens, e.g. produced by a
// scanner. See Parse.
func (p *Parser) ParseTokens(tokens []unger.Token) (*Result, error) {
	return p.Parse(unger.Lexemes(tokens))
}

// DeriveSpan finds all derivations of non-terminal A for a sentence.
// It tries every rule for A, in order, with every partition of the sentence
// into parts for the right hand side symbols of the rule. Derivations are
// returned as a derivation forest, which is empty if A does not derive the
// sentence.
//
// ctx must be created for the length of the complete input and shared by all
// calls of DeriveSpan for this input.
func (p *Parser) DeriveSpan(span Sentence, A *cfg.Symbol, ctx *Context) (*forest.Forest, error) {
	if A == nil || A.IsTerminal() || ctx == nil {
		return nil, fmt.Errorf("derive %v without non-terminal or context: %w", A, unger.ErrInvalidArgument)
	}
	result := forest.New()
	key, err := ctx.key(A, span.Start, len(span.Tokens))
	if err != nil {
		return nil, err
	}
	if ctx.active.Has(key) {
		ctx.Stats.CycleCuts++
		return result, nil
	}
	if ctx.failed.Has(key) {
		ctx.Stats.MemoHits++
		return result, nil
	}
	defer ctx.leave()
	if err = ctx.enter(); err != nil {
		return nil, err
	}
	ctx.active.Insert(key)
	defer ctx.active.Remove(key)
	//
	qname := span.Span().QualifiedName(A.Name)
	for _, r := range p.g.RulesFor(A) {
		minima, err := p.minima(r)
		if err != nil {
			return nil, err
		}
		pg, err := Partitions(len(span.Tokens), minima)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("%s: trying %s", qname, r)
		for pg.Next() {
			parts := pg.Parts()
			if k := len(parts); k > 0 && parts[k-1] < minima[k-1] {
				continue
			}
			group, err := p.match(qname, span, r, parts, ctx)
			if err != nil {
				return nil, err
			}
			if group != nil {
				tracer().Debugf("%s: %s matches with partition %v", qname, r, parts)
				result.Merge(group)
			}
		}
	}
	if result.IsEmpty() {
		ctx.failed.Insert(key)
		ctx.Stats.Failures++
	}
	return result, nil
}

// minima collects the minimum lengths of the right hand side symbols of r.
func (p *Parser) minima(r *cfg.Rule) ([]int, error) {
	minima := make([]int, len(r.RHS()))
	for i, X := range r.RHS() {
		m, ok := p.g.MinLength(X)
		if !ok {
			return nil, fmt.Errorf("rule %s: %w for %s", r, unger.ErrUnknownMinLength, X)
		}
		minima[i] = m
	}
	return minima, nil
}

// match derives the right hand side symbols of r from consecutive parts of
// span. It returns nil if any of the parts fails to match, otherwise the
// derivations for the parts plus a rule for qname.
func (p *Parser) match(qname string, span Sentence, r *cfg.Rule, parts []int, ctx *Context) (*forest.Forest, error) {
	group := forest.New()
	rhs := make([]string, 0, len(parts))
	offset := 0
	for i, X := range r.RHS() {
		sub := Sentence{
			Tokens: span.Tokens[offset : offset+parts[i]],
			Start:  span.Start + uint64(offset),
		}
		name := sub.Span().QualifiedName(X.Name)
		if X.IsTerminal() {
			if len(sub.Tokens) != 1 || sub.Tokens[0] != X.Name {
				return nil, nil
			}
			group.Add(name, X.Name)
		} else {
			f, err := p.DeriveSpan(sub, X, ctx)
			if err != nil {
				return nil, err
			}
			if f.IsEmpty() {
				return nil, nil
			}
			group.Merge(f)
		}
		rhs = append(rhs, name)
		offset += parts[i]
	}
	if len(rhs) == 0 { // epsilon rule over empty span
		eps := span.Span().QualifiedName("")
		group.Add(eps, forest.Epsilon)
		rhs = append(rhs, eps)
	}
	group.Add(qname, rhs...)
	return group, nil
}
