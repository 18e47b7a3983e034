package cfg

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unger"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 6 {
		t.Errorf("Expected grammar to have 6 rules, has %d", g.Size())
	}
	if g.Start().Name != "S" {
		t.Errorf("Expected start symbol to be S, is %v", g.Start())
	}
	if r := g.Rule(1).String(); r != "[A] ::= [B D]" {
		t.Errorf("Expected rule 1 to be [A] ::= [B D], is %s", r)
	}
	if !g.Rule(3).IsEps() {
		t.Errorf("Expected rule 3 to be an epsilon rule")
	}
	if g.TerminalCount() != 3 || g.NonTerminalCount() != 4 {
		t.Errorf("Expected 3 terminals and 4 non-terminals, have %d and %d",
			g.TerminalCount(), g.NonTerminalCount())
	}
	if len(g.RulesFor(g.NonTerminal("B"))) != 2 {
		t.Errorf("Expected 2 rules for B")
	}
	names := []string{}
	g.EachNonTerminal(func(A *Symbol) {
		names = append(names, A.Name)
	})
	if strings.Join(names, ",") != "A,B,D,S" {
		t.Errorf("Expected non-terminals to be sorted, are %v", names)
	}
	if g.Terminal("a") == nil || g.NonTerminal("a") != nil {
		t.Errorf("Expected 'a' to be a terminal")
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("A").End()
	if _, err := b.Grammar(); !errors.Is(err, unger.ErrMalformedProduction) {
		t.Errorf("Expected symbol used in 2 ways to be malformed, error is %v", err)
	}
	b = NewGrammarBuilder("Empty")
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected empty grammar to be rejected")
	}
	b = NewGrammarBuilder("G")
	b.LHS("").T("a").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected empty LHS to be rejected")
	}
}

func TestSymbolByConvention(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").Sym("Expr").Sym("+").Sym("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.SymbolByName("Expr").IsTerminal() {
		t.Errorf("Expected Expr to be a non-terminal")
	}
	if !g.SymbolByName("+").IsTerminal() || !g.SymbolByName("x").IsTerminal() {
		t.Errorf("Expected + and x to be terminals")
	}
}
