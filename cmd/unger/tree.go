package main

import (
	"fmt"

	"github.com/npillmayer/unger/forest"
	"github.com/pterm/pterm"
)

// printTree displays the derivation of root as a tree on a terminal.
func printTree(f *forest.Forest, root string) error {
	tb := &treeBuilder{}
	if _, err := f.Walk(root, tb); err != nil {
		return err
	}
	tracer().Debugf("|ll| = %d", len(tb.ll))
	pterm.Println(root)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(tb.ll)).Render()
	return nil
}

// treeBuilder is a forest.Listener collecting the nodes of a derivation as
// a leveled list.
type treeBuilder struct {
	ll pterm.LeveledList
}

var _ forest.Listener = (*treeBuilder)(nil)

func (tb *treeBuilder) EnterRule(name string, rhs []string, ctxt forest.RuleCtxt) bool {
	text := name
	if ctxt.Epsilon {
		text = "ε"
	} else if ctxt.Alternatives > 1 {
		text = fmt.Sprintf("%s (ambiguous: %d)", name, ctxt.Alternatives)
	}
	tb.ll = append(tb.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: text})
	return true
}

func (tb *treeBuilder) ExitRule(string, []interface{}, forest.RuleCtxt) interface{} {
	return nil
}

func (tb *treeBuilder) Terminal(lexeme string, ctxt forest.RuleCtxt) interface{} {
	tb.ll = append(tb.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: fmt.Sprintf("%q", lexeme)})
	return nil
}
