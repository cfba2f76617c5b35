package syntax

import (
	"unicode/utf8"
)

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

// next returns the following token and false once the input is exhausted.
func (l *lexer) next() (Token, bool) {
	if l.pos >= len(l.input) {
		return Token{}, false
	}
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '(':
		return Token{Kind: LeftParen, Pos: start}, true
	case ')':
		return Token{Kind: RightParen, Pos: start}, true
	case '*':
		return Token{Kind: Star, Pos: start}, true
	case '+':
		return Token{Kind: Plus, Pos: start}, true
	case '?':
		return Token{Kind: Question, Pos: start}, true
	case '|':
		return Token{Kind: Union, Pos: start}, true
	case '\\':
		if l.pos >= len(l.input) {
			// standalone backslash => treat as literal
			return Token{Kind: Char, Ch: r, Pos: start}, true
		}
		r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += s2
		return Token{Kind: Char, Ch: r2, Pos: start}, true
	default:
		return Token{Kind: Char, Ch: r, Pos: start}, true
	}
}

// CheckUTF8 returns an *Error at the first byte of pattern that is not
// valid UTF-8. The lexer would otherwise read every such byte as
// utf8.RuneError and merge distinct bytes into one symbol.
func CheckUTF8(pattern string) error {
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		if r == utf8.RuneError && size == 1 {
			return &Error{Pos: i, Err: ErrInvalidUTF8}
		}
		i += size
	}
	return nil
}

// Tokenize splits pattern into tokens and makes concatenation explicit:
// a Concat token goes between a literal, ')' or postfix operator and a
// following literal or '('. Parentheses are not checked here.
func Tokenize(pattern string) []Token {
	l := newLexer(pattern)
	tokens := make([]Token, 0, len(pattern)*2)
	prevEndsOperand := false
	for {
		tok, ok := l.next()
		if !ok {
			return tokens
		}
		if prevEndsOperand && (tok.Kind == Char || tok.Kind == LeftParen) {
			tokens = append(tokens, Token{Kind: Concat, Pos: tok.Pos})
		}
		tokens = append(tokens, tok)

		switch tok.Kind {
		case Char, RightParen, Star, Plus, Question:
			prevEndsOperand = true
		default:
			prevEndsOperand = false
		}
	}
}
