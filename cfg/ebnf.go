package cfg

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF renders a grammar in the EBNF notation of golang.org/x/exp/ebnf.
// There is one production per non-terminal with a rule, in order of first
// appearance as a left hand side. Terminals are rendered as quoted tokens.
// Epsilon-alternatives make the production optional:
//
//     S -> a S b | c | ε     ⇒     S = [ "a" S "b" | "c" ] .
//
// Non-terminal names which are not valid EBNF production names are rewritten:
// runes other than letters and digits are replaced by '_', names not starting
// with an uppercase letter are prefixed by "N_".
func EBNF(g *Grammar) string {
	names := ebnfNames(g)
	var b bytes.Buffer
	seen := make(map[*Symbol]bool)
	for _, r := range g.rules {
		A := r.LHS
		if seen[A] {
			continue
		}
		seen[A] = true
		var alts []string
		eps := false
		for _, rr := range g.RulesFor(A) {
			if rr.IsEps() {
				eps = true
				continue
			}
			seq := make([]string, len(rr.rhs))
			for i, X := range rr.rhs {
				if X.IsTerminal() {
					seq[i] = strconv.Quote(X.Name)
				} else {
					seq[i] = names[X]
				}
			}
			alts = append(alts, strings.Join(seq, " "))
		}
		b.WriteString(names[A])
		b.WriteString(" =")
		switch {
		case len(alts) == 0: // epsilon only
		case eps:
			b.WriteString(" [ " + strings.Join(alts, " | ") + " ]")
		default:
			b.WriteString(" " + strings.Join(alts, " | "))
		}
		b.WriteString(" .\n")
	}
	return b.String()
}

// Verify checks a grammar for undefined non-terminals, i.e. non-terminals
// without any rule, and for non-terminals unreachable from the start symbol.
// It uses the verifier of package golang.org/x/exp/ebnf on the EBNF rendering
// of g; names in error messages refer to this rendering.
func Verify(g *Grammar) error {
	if g.Start() == nil {
		return fmt.Errorf("grammar %s is empty", g.Name)
	}
	text := EBNF(g)
	tracer().Debugf("verifying grammar %s:\n%s", g.Name, text)
	eg, err := ebnf.Parse(g.Name, strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("grammar %s: cannot render as EBNF: %w", g.Name, err)
	}
	if err = ebnf.Verify(eg, ebnfNames(g)[g.Start()]); err != nil {
		return fmt.Errorf("grammar %s does not verify: %w", g.Name, err)
	}
	return nil
}

// ebnfNames maps non-terminals to unique EBNF production names.
func ebnfNames(g *Grammar) map[*Symbol]string {
	names := make(map[*Symbol]string, len(g.nonterms))
	used := make(map[string]bool, len(g.nonterms))
	for _, A := range g.nonterms { // in order of definition
		n := ebnfIdentifier(A.Name)
		if used[n] {
			n = fmt.Sprintf("%s_%d", n, A.Value)
		}
		used[n] = true
		names[A] = n
	}
	return names
}

func ebnfIdentifier(name string) string {
	id := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
	if !IsNonTerminalName(id) {
		id = "N_" + id
	}
	return id
}
