package unger

import (
	"errors"
	"fmt"
)

// Error kinds. All of them are fatal to the parse attempt which produced them.
// Callers test for them with errors.Is.
//
// Not finding a derivation for an input is not an error.
var (
	ErrMalformedProduction = errors.New("malformed production")
	ErrUnknownTerminal     = errors.New("unknown terminal")
	ErrUnknownMinLength    = errors.New("unknown minimum length")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrResourceExhausted   = errors.New("resource exhausted")
)

// GrammarError is an error reported for a line of grammar text.
type GrammarError struct {
	Source string // name of the grammar source, may be empty
	Line   int    // 1-based line number
	Text   string // offending line
	Reason string
}

func (e *GrammarError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %s: %s in %q", e.Source, e.Line, ErrMalformedProduction, e.Reason, e.Text)
	}
	return fmt.Sprintf("%d: %s: %s in %q", e.Line, ErrMalformedProduction, e.Reason, e.Text)
}

// Unwrap makes GrammarError match ErrMalformedProduction.
func (e *GrammarError) Unwrap() error {
	return ErrMalformedProduction
}

// TokenError is an error reported for an input token which is not a terminal
// of the grammar in use.
type TokenError struct {
	Lexeme    string
	Line, Col int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%d:%d: %s %q", e.Line, e.Col, ErrUnknownTerminal, e.Lexeme)
}

// Unwrap makes TokenError match ErrUnknownTerminal.
func (e *TokenError) Unwrap() error {
	return ErrUnknownTerminal
}
