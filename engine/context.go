package engine

import (
	"fmt"

	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/cfg"
	"golang.org/x/tools/container/intsets"
)

// Context is the recursion context of a parse. It holds two sets of
// (non-terminal, start, length) keys:
//
// - active: keys currently being derived further up the call stack. A key
// is added on entry of DeriveSpan and removed on exit. Re-entering an
// active key is cut off, which makes parsing with left-recursive and cyclic
// grammars terminate.
//
// - failed: keys proven to be underivable. It only grows during a parse and
// is visible to every call of DeriveSpan using this context.
//
// A context is bound to the length of a complete input and must not be
// shared between parses.
type Context struct {
	n        int // length of complete input
	active   intsets.Sparse
	failed   intsets.Sparse
	depth    int // current nesting of DeriveSpan
	budget   int // max number of DeriveSpan calls, 0 = unlimited
	maxDepth int // max nesting, 0 = unlimited
	Stats    Stats
}

// Stats collects statistics of a parse.
type Stats struct {
	Calls     int // invocations of DeriveSpan
	CycleCuts int // re-entries of active keys which were cut off
	MemoHits  int // keys found in the failure memo
	Failures  int // keys recorded as underivable
	MaxDepth  int // deepest nesting of DeriveSpan
}

func (s Stats) String() string {
	return fmt.Sprintf("calls=%d, cycle-cuts=%d, memo-hits=%d, failures=%d, max-depth=%d",
		s.Calls, s.CycleCuts, s.MemoHits, s.Failures, s.MaxDepth)
}

// NewContext creates a fresh recursion context for an input of n tokens.
func NewContext(n int) *Context {
	return &Context{n: n}
}

// key encodes (A, start, length) as a unique integer for an input of ctx.n
// tokens. start ranges over 1…n+1 and length over 0…n.
func (ctx *Context) key(A *cfg.Symbol, start uint64, length int) (int, error) {
	if start < 1 || length < 0 || int(start)+length > ctx.n+1 {
		return 0, fmt.Errorf("span (%d…%d) outside of input of length %d: %w",
			start, int(start)+length, ctx.n, unger.ErrInvalidArgument)
	}
	return (A.Value*(ctx.n+2)+int(start))*(ctx.n+1) + length, nil
}

// enter checks the budget and nesting limits and counts an invocation.
func (ctx *Context) enter() error {
	ctx.Stats.Calls++
	ctx.depth++
	if ctx.depth > ctx.Stats.MaxDepth {
		ctx.Stats.MaxDepth = ctx.depth
	}
	if ctx.budget > 0 && ctx.Stats.Calls > ctx.budget {
		return fmt.Errorf("more than %d derivation steps: %w", ctx.budget, unger.ErrResourceExhausted)
	}
	if ctx.maxDepth > 0 && ctx.depth > ctx.maxDepth {
		return fmt.Errorf("recursion deeper than %d: %w", ctx.maxDepth, unger.ErrResourceExhausted)
	}
	return nil
}

func (ctx *Context) leave() {
	ctx.depth--
}
