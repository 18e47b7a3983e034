/*
Package forest implements derivation forests as produced by Unger parsers.

A derivation forest is a flat list of rules, with grammar symbols replaced
by span-qualified names. Name "S_2_3" denotes non-terminal S covering 3 input
tokens, starting at position 2. The derivations of input "a a c b b" for
grammar

    S -> a S b
    S -> c

result in the forest

    a_1_1 --> a
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

with one output line per right hand side symbol of a rule. A name may be the
left hand side of more than one rule, which is how ambiguity surfaces.
An empty derivation covering position p is represented by a placeholder
"_p_0 --> epsilon".

Forests are not trees, but may be navigated as such: Walk traverses the
derivation tree below a name, selecting the first alternative for each
name which does not lead to a cyclic derivation. Yield re-creates the input
tokens covered by a name.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.parse'.
func tracer() tracing.Trace {
	return tracing.Select("unger.parse")
}
