/*
Package engine implements an Unger parser.

Unger's method is a top-down parsing method for arbitrary context-free
grammars. To find the derivations of a non-terminal A for a run of input
tokens, every rule A → X1 … Xk is tried with every partition of the input
run into k consecutive parts. Part i is then matched against Xi: terminals
have to match a single token, non-terminals are derived recursively.
Grammars do not have to be normalized and may be ambiguous, left-recursive
or cyclic.

A description of the method may be found in
"Parsing Techniques" by Dick Grune and Ceriel J.H. Jacobs
(https://dickgrune.com/Books/PTAPG_2nd_Edition/), Section 6.1.

The number of partitions grows exponentially with the length of the input.
The parser prunes partitions using the minimum length of terminal strings
every non-terminal derives (see cfg.Grammar.Precompute), and remembers which
combinations of non-terminal and input run are not derivable. Recursive
re-entry of a non-terminal for the same input run is cut off. For
pathological inputs, clients may limit the work by options Budget and
MaxDepth.

Usage:

    g, _ := cfg.ParseGrammar("G", "S -> a S b\nS -> c\n")
    p := engine.NewParser(g)
    res, err := p.Parse([]string{"a", "c", "b"})
    if err == nil && res.Accepted {
        res.Forest.WriteTo(os.Stdout)
    }

The result is a derivation forest, see package forest.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.parse'.
func tracer() tracing.Trace {
	return tracing.Select("unger.parse")
}
