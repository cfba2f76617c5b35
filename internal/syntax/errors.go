package syntax

import (
	"errors"
	"fmt"
)

// ErrUnbalancedParen is reported for a ')' without a matching '(' and for
// a '(' that is never closed.
var ErrUnbalancedParen = errors.New("unbalanced parenthesis")

// ErrInvalidUTF8 is reported for a byte that does not start a valid UTF-8
// sequence.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Error locates a syntax problem in the pattern.
type Error struct {
	Pos int
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
