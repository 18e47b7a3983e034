package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unger/cfg"
	"github.com/npillmayer/unger/engine"
)

func makeCLI(t *testing.T) *cli {
	g, err := cfg.ParseGrammar("G", "S -> a S b\nS -> c\n")
	if err != nil {
		t.Fatal(err)
	}
	return &cli{g: g, parser: engine.NewParser(g), showTree: true}
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.cli")
	defer teardown()
	//
	u := makeCLI(t)
	for input, code := range map[string]int{
		"a a c b b": accepted,
		"a\nc\nb":   accepted,
		"a c":       noParse,
		"a x b":     failure,
	} {
		if c := u.run(input); c != code {
			t.Errorf("Expected exit code %d for %q, have %d", code, input, c)
		}
	}
}

func TestTreeBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.cli")
	defer teardown()
	//
	res, err := makeCLI(t).parser.Parse([]string{"a", "c", "b"})
	if err != nil {
		t.Fatal(err)
	}
	tb := &treeBuilder{}
	if _, err := res.Forest.Walk(res.Root, tb); err != nil {
		t.Fatal(err)
	}
	// S, a_1_1, a, S_2_1, c_2_1, c, b_3_1, b
	if len(tb.ll) != 8 {
		t.Fatalf("Expected 8 tree nodes, have %d", len(tb.ll))
	}
	if tb.ll[0].Text != "S_1_3" || tb.ll[0].Level != 0 {
		t.Errorf("Expected root S_1_3 at level 0, is %q at %d", tb.ll[0].Text, tb.ll[0].Level)
	}
	if tb.ll[2].Text != `"a"` || tb.ll[2].Level != 2 {
		t.Errorf("Expected terminal \"a\" at level 2, is %s at %d", tb.ll[2].Text, tb.ll[2].Level)
	}
}
