package cfg

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/unger"
)

// ProductionArrow separates the left hand side from the right hand side of a
// production in grammar text.
const ProductionArrow = "->"

// ReadGrammar reads a grammar from text, one production per line:
//
//     LHS -> sym1 sym2 … symN
//
// Blank lines and lines starting with '#' are skipped. An empty right hand side
// denotes an epsilon-production. Symbols starting with an uppercase letter are
// non-terminals, all others are terminals. The left hand side of the first
// production is the start symbol.
//
// A malformed line fails the whole read with an *unger.GrammarError.
func ReadGrammar(name string, r io.Reader) (*Grammar, error) {
	gb := NewGrammarBuilder(name)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		sides := strings.SplitN(line, ProductionArrow, 2)
		if len(sides) != 2 {
			return nil, lineError(name, lineno, line, "missing '"+ProductionArrow+"'")
		}
		lhs := strings.TrimSpace(sides[0])
		if lhs == "" {
			return nil, lineError(name, lineno, line, "empty left hand side")
		}
		if strings.ContainsAny(lhs, " \t") {
			return nil, lineError(name, lineno, line, "more than one symbol on left hand side")
		}
		if !IsNonTerminalName(lhs) {
			return nil, lineError(name, lineno, line, "left hand side is not a non-terminal")
		}
		rb := gb.LHS(lhs)
		for _, sym := range strings.Fields(sides[1]) {
			rb.Sym(sym)
		}
		rb.End()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	g, err := gb.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("read grammar %s with %d rules", name, g.Size())
	return g, nil
}

// ParseGrammar reads a grammar from a string. See ReadGrammar.
func ParseGrammar(name string, text string) (*Grammar, error) {
	return ReadGrammar(name, strings.NewReader(text))
}

func lineError(name string, lineno int, line string, reason string) error {
	err := &unger.GrammarError{
		Source: name,
		Line:   lineno,
		Text:   line,
		Reason: reason,
	}
	tracer().Errorf(err.Error())
	return err
}
