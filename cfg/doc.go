/*
Package cfg implements context-free grammars for parsing with Unger's method.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := cfg.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->

This results in the following trivial grammar:

   g, err := b.Grammar()
   g.Dump()

   0: [S] ::= [A a]
   1: [A] ::= [B D]
   2: [B] ::= [b]
   3: [B] ::= []
   4: [D] ::= [d]
   5: [D] ::= []

The first rule's left-hand side is the start symbol.
Every symbol is classified as either terminal or non-terminal at the moment
it enters the grammar and keeps this classification. Method Sym(…) of the
rule builder classifies by naming convention: a symbol whose name starts
with an uppercase letter is a non-terminal, everything else is a terminal.

Reading Grammars

Grammars may be read from text, one production per line:

    S -> a S b
    S -> c
    # comment
    E ->

An empty right-hand side denotes an epsilon-production. Symbols are classified
by the naming convention described above. Malformed lines fail the whole
read with an error, which carries the line number.

Static Grammar Analysis

Before parsing, the minimum number of tokens every non-terminal is able to
derive is computed:

    g.Precompute()
    n, ok := g.MinLength(g.SymbolByName("A"))   // 0, true

Non-terminals which cannot derive any finite terminal string are left without
a minimum length; see Unproductive(). Function Verify checks a grammar for
undefined and unreachable non-terminals.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.parse'.
func tracer() tracing.Trace {
	return tracing.Select("unger.parse")
}
