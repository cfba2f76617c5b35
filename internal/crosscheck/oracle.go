// Package crosscheck double-checks compiled automata against an
// independent recognizer built with lexmachine.
package crosscheck

import (
	"strings"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"regexfa/internal/syntax"
)

// sentinel leads every rule and every scanned word. lexmachine refuses a
// rule that matches the empty string, and the prefix keeps nullable
// patterns such as a* from being one.
const sentinel = "#"

// Oracle accepts a word when lexmachine's longest match of the anchored
// pattern at the start of the input spans all of it.
type Oracle struct {
	pattern string
	lexer   *lexmachine.Lexer
}

// NewOracle compiles the infix tokens of a pattern into a one-rule
// lexmachine lexer.
func NewOracle(tokens []syntax.Token) (*Oracle, error) {
	pattern := sentinel + "(" + Translate(tokens) + ")"
	l := lexmachine.NewLexer()
	l.Add([]byte(pattern), wholeMatch)
	if err := l.Compile(); err != nil {
		return nil, err
	}
	return &Oracle{pattern: pattern, lexer: l}, nil
}

// Pattern returns the anchored rule in lexmachine syntax.
func (o *Oracle) Pattern() string { return o.pattern }

func (o *Oracle) Accepts(word string) (bool, error) {
	input := sentinel + word
	scanner, err := o.lexer.Scanner([]byte(input))
	if err != nil {
		return false, err
	}
	tok, err, eof := scanner.Next()
	if eof || err != nil {
		return false, nil
	}
	m, ok := tok.([]byte)
	return ok && len(m) == len(input), nil
}

func wholeMatch(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return m.Bytes, nil
}

// Translate writes infix tokens back out in lexmachine syntax. Operator
// literals go inside a character class. lexmachine matches bytes, so a
// multibyte rune is grouped to keep a following operator on the whole
// rune. Implicit concatenation needs no marker.
func Translate(tokens []syntax.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case syntax.Concat:
		case syntax.Char:
			writeLiteral(&b, t.Ch)
		default:
			b.WriteString(t.String())
		}
	}
	return b.String()
}

func writeLiteral(b *strings.Builder, r rune) {
	switch {
	case r == '\\' || r == ']' || r == '^' || r == '-':
		b.WriteString(`[\`)
		b.WriteRune(r)
		b.WriteByte(']')
	case strings.ContainsRune(`.[()*+?|{}$`, r):
		b.WriteByte('[')
		b.WriteRune(r)
		b.WriteByte(']')
	case r >= utf8.RuneSelf:
		b.WriteByte('(')
		b.WriteRune(r)
		b.WriteByte(')')
	default:
		b.WriteRune(r)
	}
}
