package nfa

import (
	"errors"
	"fmt"

	"regexfa/internal/syntax"
)

var (
	// ErrMissingOperand indicates an operator found fewer fragments on the
	// stack than it needs.
	ErrMissingOperand = errors.New("operator is missing an operand")

	// ErrDanglingFragments indicates more than one fragment was left after
	// the whole postfix stream was consumed.
	ErrDanglingFragments = errors.New("expression left unconnected fragments")

	// ErrEmptyExpression indicates there was nothing to build.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrUnexpectedToken indicates a token that has no construction rule,
	// such as a parenthesis that survived postfix conversion.
	ErrUnexpectedToken = errors.New("unexpected token in postfix stream")

	// ErrInvalidState indicates a state id that does not belong to the NFA.
	ErrInvalidState = errors.New("invalid NFA state")
)

// BuildError reports which postfix token made construction fail.
// Index is -1 when the failure is not tied to a single token.
type BuildError struct {
	Index int
	Token syntax.Token
	Err   error
}

func (e *BuildError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("NFA build error: %v", e.Err)
	}
	return fmt.Sprintf("NFA build error at token %d (%s, offset %d): %v",
		e.Index, e.Token, e.Token.Pos, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
