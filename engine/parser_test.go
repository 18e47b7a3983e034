package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/cfg"
	"github.com/npillmayer/unger/forest"
)

func makeGrammar(t *testing.T, text string) *cfg.Grammar {
	g, err := cfg.ParseGrammar(t.Name(), text)
	if err != nil {
		t.Fatal(err)
	}
	g.Precompute()
	return g
}

func parse(t *testing.T, p *Parser, input string) *Result {
	res, err := p.Parse(strings.Fields(input))
	if err != nil {
		t.Fatalf("Parse of %q failed: %v", input, err)
	}
	return res
}

// Every span-qualified name in a forest has to derive exactly the input
// tokens covered by its span.
func checkSoundness(t *testing.T, f *forest.Forest, input string) {
	tokens := strings.Fields(input)
	for _, r := range f.Rules() {
		_, span, ok := forest.SplitName(r.LHS)
		if !ok {
			t.Errorf("Rule %v has no span-qualified LHS", r)
			continue
		}
		y, err := f.Yield(r.LHS)
		if err != nil {
			t.Errorf("Cannot yield %s: %v", r.LHS, err)
			continue
		}
		expected := strings.Join(tokens[span.From()-1:span.To()-1], " ")
		if strings.Join(y, " ") != expected {
			t.Errorf("Expected %s to yield %q, yields %q", r.LHS, expected, strings.Join(y, " "))
		}
	}
}

func TestParseBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S b\nS -> c\n")
	res := parse(t, NewParser(g), "a a c b b")
	if !res.Accepted || res.Root != "S_1_5" {
		t.Fatalf("Expected input to be accepted with root S_1_5, root is %s", res.Root)
	}
	found := false
	for _, r := range res.Forest.RulesFor("S_1_5") {
		if strings.Join(r.RHS, " ") == "a_1_1 S_2_3 b_5_1" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected forest to contain S_1_5 --> a_1_1 S_2_3 b_5_1")
	}
	var b bytes.Buffer
	res.Forest.WriteTo(&b)
	expected := `a_1_1 --> a
a_2_1 --> a
c_3_1 --> c
S_3_1 --> c_3_1
b_4_1 --> b
S_2_3 --> a_2_1
S_2_3 --> S_3_1
S_2_3 --> b_4_1
b_5_1 --> b
S_1_5 --> a_1_1
S_1_5 --> S_2_3
S_1_5 --> b_5_1
`
	if b.String() != expected {
		t.Errorf("Expected output\n%s, is\n%s", expected, b.String())
	}
	checkSoundness(t, res.Forest, "a a c b b")
}

func TestParseNoParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a\nS -> b b\n")
	res := parse(t, NewParser(g), "b")
	if res.Accepted || res.Forest.Has("S_1_1") {
		t.Errorf("Expected input not to parse")
	}
	if !res.Forest.IsEmpty() {
		t.Errorf("Expected empty forest, have %d rules", res.Forest.Size())
	}
}

func TestParseUnknownMinLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> A\nS -> a\n")
	_, err := NewParser(g).Parse([]string{"a"})
	if !errors.Is(err, unger.ErrUnknownMinLength) {
		t.Errorf("Expected unknown minimum length of A, error is %v", err)
	}
}

func TestParseEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S ->\n")
	res := parse(t, NewParser(g), "")
	if !res.Accepted || res.Root != "S_1_0" {
		t.Fatalf("Expected empty input to be accepted with root S_1_0, root is %s", res.Root)
	}
	if res.Forest.String() != "_1_0 --> epsilon\nS_1_0 --> _1_0\n" {
		t.Errorf("Unexpected epsilon derivation:\n%s", res.Forest)
	}
	g = makeGrammar(t, "S -> A b A\nA ->\nA -> a\n")
	res = parse(t, NewParser(g), "b a")
	if !res.Accepted {
		t.Fatalf("Expected 'b a' to be accepted")
	}
	if !res.Forest.Has("A_1_0") || !res.Forest.Has("_1_0") {
		t.Errorf("Expected empty derivation of A at position 1")
	}
	checkSoundness(t, res.Forest, "b a")
}

func TestParseUnknownTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a\n")
	_, err := NewParser(g).Parse([]string{"a", "z"})
	if !errors.Is(err, unger.ErrUnknownTerminal) {
		t.Errorf("Expected z to be an unknown terminal, error is %v", err)
	}
	_, err = NewParser(g).Parse([]string{"S"})
	if !errors.Is(err, unger.ErrUnknownTerminal) {
		t.Errorf("Expected non-terminal S to be rejected as input, error is %v", err)
	}
}

func TestParseLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, `
E -> E + T
E -> T
T -> T * F
T -> F
F -> ( E )
F -> x
`)
	p := NewParser(g)
	for _, input := range []string{"x", "x + x", "x * ( x + x ) * x", "x + x * x + x"} {
		res := parse(t, p, input)
		if !res.Accepted {
			t.Errorf("Expected %q to be accepted", input)
		}
		checkSoundness(t, res.Forest, input)
	}
	if res := parse(t, p, "x + + x"); res.Accepted {
		t.Errorf("Expected 'x + + x' not to be accepted")
	}
}

func TestParseCyclic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> S S\nS -> S\nS -> a\nS ->\n")
	res := parse(t, NewParser(g), "a a")
	if !res.Accepted {
		t.Fatalf("Expected cyclic grammar to accept 'a a'")
	}
	if res.Stats.CycleCuts == 0 {
		t.Errorf("Expected cycles to be cut, stats are %v", res.Stats)
	}
	checkSoundness(t, res.Forest, "a a")
}

func TestParseAmbiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "E -> E + E\nE -> x\n")
	res := parse(t, NewParser(g), "x + x + x")
	if !res.Accepted {
		t.Fatalf("Expected input to be accepted")
	}
	if n := res.Forest.Alternatives("E_1_5"); n != 2 {
		t.Errorf("Expected 2 derivations for E_1_5, have %d", n)
	}
	checkSoundness(t, res.Forest, "x + x + x")
}

func TestParseDoesNotChangeGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S b\nS -> c\nS -> S\n")
	dump := func() string {
		var rules []string
		for _, r := range g.Rules() {
			rules = append(rules, r.String())
		}
		return strings.Join(rules, "\n")
	}
	before := dump()
	parse(t, NewParser(g), "a c b")
	if after := dump(); after != before {
		t.Errorf("Expected rules to stay unchanged, were\n%s\nare\n%s", before, after)
	}
}

func TestFailureMemo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> B a\nS -> B c\nB -> b\n")
	res := parse(t, NewParser(g), "a c")
	if res.Accepted {
		t.Errorf("Expected 'a c' not to be accepted")
	}
	if res.Stats.MemoHits != 1 {
		t.Errorf("Expected one hit of the failure memo, stats are %v", res.Stats)
	}
}

func TestDeriveSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S b\nS -> c\n")
	tokens := strings.Fields("a a c b b")
	p := NewParser(g)
	ctx := NewContext(len(tokens))
	f, err := p.DeriveSpan(Sentence{Tokens: tokens[1:4], Start: 2}, g.NonTerminal("S"), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Has("S_2_3") || f.Has("S_1_5") {
		t.Errorf("Expected derivation of S_2_3 only")
	}
	_, err = p.DeriveSpan(Sentence{Tokens: tokens, Start: 3}, g.NonTerminal("S"), ctx)
	if !errors.Is(err, unger.ErrInvalidArgument) {
		t.Errorf("Expected span outside of input to be rejected, error is %v", err)
	}
	_, err = p.DeriveSpan(Sentence{Tokens: tokens, Start: 1}, g.Terminal("a"), ctx)
	if !errors.Is(err, unger.ErrInvalidArgument) {
		t.Errorf("Expected terminal to be rejected, error is %v", err)
	}
}

func TestBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S b\nS -> c\n")
	input := strings.Fields("a a c b b")
	_, err := NewParser(g, Budget(2)).Parse(input)
	if !errors.Is(err, unger.ErrResourceExhausted) {
		t.Errorf("Expected budget to be exhausted, error is %v", err)
	}
	_, err = NewParser(g, MaxDepth(1)).Parse(input)
	if !errors.Is(err, unger.ErrResourceExhausted) {
		t.Errorf("Expected recursion depth to be exhausted, error is %v", err)
	}
	res, err := NewParser(g, Budget(100), MaxDepth(3)).Parse(input)
	if err != nil || !res.Accepted {
		t.Errorf("Expected input to be accepted within limits, error is %v", err)
	}
}

func TestBudgetFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.parse")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"unger.budget": "2"})
	defer gconf.Initialize(testconfig.Conf{})
	tracing.Select("unger.parse").SetTraceLevel(tracing.LevelDebug)
	//
	g := makeGrammar(t, "S -> a S b\nS -> c\n")
	input := strings.Fields("a a c b b")
	if _, err := NewParser(g).Parse(input); !errors.Is(err, unger.ErrResourceExhausted) {
		t.Errorf("Expected configured budget to be exhausted, error is %v", err)
	}
	if _, err := NewParser(g, Budget(0)).Parse(input); err != nil {
		t.Errorf("Expected option to override configuration, error is %v", err)
	}
}
