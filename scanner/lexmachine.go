package scanner

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/cfg"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// Token ids used by the DFA.
const (
	wordTok = iota
)

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner for the
// terminals of a grammar.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	g     *cfg.Grammar
}

// NewLMAdapter creates a new lexmachine adapter for grammar g.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(g *cfg.Grammar) (*LMAdapter, error) {
	adapter := &LMAdapter{g: g}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte("( |\t|\n|\r|\f|\v)+"), Skip)
	adapter.Lexer.Add([]byte("[^ \t\n\r\f\v]+"), MakeToken("WORD", wordTok))
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, g: lm.g, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	g       *cfg.Grammar
	count   uint64 // tokens produced so far
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Words which are not terminals of the grammar are returned with token type
// unger.UnknownTokType, terminals with the serial value of the terminal.
func (lms *LMScanner) NextToken() unger.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeDefaultToken(EOF, "", unger.Span{}, 0, 0)
	}
	token := tok.(*lexmachine.Token)
	lexeme := string(token.Lexeme)
	kind := unger.UnknownTokType
	if A := lms.g.Terminal(lexeme); A != nil {
		kind = unger.TokType(A.Value)
	}
	lms.count++
	tracer().Debugf("token #%d is %q, type %d", lms.count, lexeme, kind)
	return MakeDefaultToken(kind, lexeme, unger.SpanOf(lms.count, 1), token.StartLine, token.StartColumn)
}

// Tokenize reads the complete input and splits it into tokens. Every token
// has to be a terminal of grammar g, otherwise Tokenize returns an
// *unger.TokenError for the first unknown token.
func Tokenize(g *cfg.Grammar, input io.Reader) ([]unger.Token, error) {
	text, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, err
	}
	lm, err := NewLMAdapter(g)
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(string(text))
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = fmt.Errorf("cannot tokenize input: %w", e)
		}
	})
	var tokens []unger.Token
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		if token.TokType() == unger.UnknownTokType {
			return nil, &unger.TokenError{
				Lexeme: token.Lexeme(),
				Line:   token.Line(),
				Col:    token.Col(),
			}
		}
		tokens = append(tokens, token)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	tracer().Infof("input has %d tokens", len(tokens))
	return tokens, nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
