/*
Package unger is a toolbox for parsing with Unger's method.

Unger's method is a top-down, brute-force parsing technique for arbitrary
context-free grammars. For a non-terminal and a span of input tokens it tries
every production of the non-terminal and every way of distributing the span's
length over the production's right-hand side, recursing into each part.
It needs no grammar normalization and copes with ambiguous and even cyclic
(left-recursive) grammars, at the price of a worst-case exponential amount
of work. Package structure is as follows:

■ cfg: Package cfg holds the grammar model, a grammar builder, a reader for
grammar text files and the minimum-derivable-length analysis.

■ engine: Package engine implements the parser proper, together with the
length-partition generator.

■ cmd/unger: Command unger parses input files or interactive input against a
grammar read from a file.

■ forest: Package forest holds the derivation forest a parse produces, as a flat
list of rules over span-qualified symbol names.

■ scanner: Package scanner tokenizes input sentences.

The base package contains data types which are used throughout all the other
packages: spans, tokens and error kinds.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unger
