// Package syntax turns a pattern string into tokens and reorders them into
// postfix form for the automaton builder.
package syntax

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Token.
type Kind int

const (
	Char       Kind = iota // literal rune
	Union                  // |
	Star                   // *
	Plus                   // +
	Question               // ?
	Concat                 // implicit concatenation, never written by the user
	LeftParen              // (
	RightParen             // )
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "Char"
	case Union:
		return "Union"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Question:
		return "Question"
	case Concat:
		return "Concat"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one lexical unit of a pattern. Ch is set only for Char tokens.
// Pos is the byte offset in the pattern the token came from.
type Token struct {
	Kind Kind
	Ch   rune
	Pos  int
}

// IsOperator reports whether r has a meaning of its own in a pattern.
func IsOperator(r rune) bool {
	switch r {
	case '|', '*', '+', '?', '(', ')', '\\':
		return true
	}
	return false
}

// precedence follows the usual regex binding: postfix operators bind
// tighter than concatenation, which binds tighter than union.
func (t Token) precedence() int {
	switch t.Kind {
	case Star, Plus, Question:
		return 3
	case Concat:
		return 2
	case Union:
		return 1
	default:
		return 0
	}
}

// String renders the token the way it would be written in a pattern.
// Concatenation has no written form and prints as a middle dot.
func (t Token) String() string {
	switch t.Kind {
	case Char:
		if IsOperator(t.Ch) {
			return `\` + string(t.Ch)
		}
		return string(t.Ch)
	case Union:
		return "|"
	case Star:
		return "*"
	case Plus:
		return "+"
	case Question:
		return "?"
	case Concat:
		return "·"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "?" + t.Kind.String()
}

// Format joins the written form of every token.
func Format(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
