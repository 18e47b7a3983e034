/*
Package scanner splits input text into tokens for the parsers of package engine.

Input is a sequence of words, separated by white space and possibly spread
over several lines. Every word has to be a terminal of the grammar in use.
The scanner is a DFA generated by lexmachine, see
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

	g, _ := cfg.ParseGrammar("G", "S -> a S b\nS -> c\n")
	tokens, err := scanner.Tokenize(g, strings.NewReader("a c\nb"))
	if err != nil {
		// err wraps unger.ErrUnknownTerminal for words which are not terminals
	}

Clients needing the tokens one at a time create a tokenizer for the
terminals of a grammar and read tokens until EOF:

	lm, _ := scanner.NewLMAdapter(g)
	scan, _ := lm.Scanner("a c b")
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unger"
)

// tracer traces with key 'unger.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("unger.scanner")
}

// EOF is the token type signalling the end of input.
const EOF unger.TokType = -2

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() unger.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind      unger.TokType
	lexeme    string
	span      unger.Span
	line, col int
}

var _ unger.Token = DefaultToken{}

// MakeDefaultToken creates a token. span is the position of the token within
// the sequence of input tokens, line and col are the position of its first
// character in the input text.
func MakeDefaultToken(typ unger.TokType, lexeme string, span unger.Span, line, col int) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		line:   line,
		col:    col,
	}
}

// TokType is part of interface unger.Token.
func (t DefaultToken) TokType() unger.TokType {
	return t.kind
}

// Lexeme is part of interface unger.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface unger.Token.
func (t DefaultToken) Span() unger.Span {
	return t.span
}

// Line is part of interface unger.Token.
func (t DefaultToken) Line() int {
	return t.line
}

// Col is part of interface unger.Token.
func (t DefaultToken) Col() int {
	return t.col
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q@%d:%d", t.lexeme, t.line, t.col)
}
