package unger

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. For input tokens of a parse it is
// the serial value of the terminal symbol the token stands for.
type TokType int

// UnknownTokType is assigned to tokens which do not match any terminal
// symbol of a grammar.
const UnknownTokType TokType = -1

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals in a language.
//
// An example would be the 3rd word of the input sentence "a a c b b":
//
//    TokType = 3           // serial value of terminal 'c'
//    Lexeme  = "c"         // lexeme how it appeared in the input stream
//    Span    = (3…4)       // 3rd token of the sentence
//    Line    = 1           // input line
//    Col     = 5           // input column
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
	Line() int
	Col() int
}

// Lexemes extracts the lexemes from a sequence of tokens.
func Lexemes(tokens []Token) []string {
	lx := make([]string, len(tokens))
	for i, t := range tokens {
		lx[i] = t.Lexeme()
	}
	return lx
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse forest will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end. Positions are 1-based, i.e. the first token of an input
// sentence has span (1…2).
type Span [2]uint64 // (x…y)

// SpanOf creates a span from a start position and a length.
func SpanOf(start uint64, length int) Span {
	return Span{start, start + uint64(length)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// QualifiedName returns a symbol name qualified by this span, as it is used
// for derivation forests: "A_3_2" for a symbol A covering 2 tokens from
// position 3 on.
func (s Span) QualifiedName(name string) string {
	return fmt.Sprintf("%s_%d_%d", name, s.From(), s.Len())
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
