/*
Command unger parses input with Unger's method, for a context-free grammar
read from a file.

Usage:

    unger [flags] grammar-file [input-file]

Flags are

    -trace level   trace level [Debug|Info|Error]
    -tree          display the first derivation as a tree
    -budget n      limit the number of derivation steps (0 = no limit)
    -depth n       limit the nesting of derivation steps (0 = no limit)
    -ebnf          print the grammar in EBNF and exit

The grammar file contains one production per line, for example

    S -> a S b
    S -> c

The input file contains terminals, separated by white space. If no input file
is given, unger reads input sentences interactively, one per line.
For every input accepted, the derivation forest is printed, one line per
right hand side symbol of a rule:

    S_1_3 --> a_1_1
    S_1_3 --> S_2_1
    S_1_3 --> b_3_1

Configuration is read from NestedText files for application tag "unger"
at the usual locations for configuration files. Keys are

    unger.budget        default for -budget
    unger.maxdepth      default for -depth
    tracelevel.<key>    trace level for tracer <key>, e.g. 'unger.parse'

Exit codes are 0 for accepted input, 1 for input which does not parse and 2
for errors.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.cli'
func tracer() tracing.Trace {
	return tracing.Select("unger.cli")
}
