package nfa

import "regexfa/internal/syntax"

// Build evaluates a postfix token stream with an operand stack of
// fragments (Thompson's construction). Exactly one fragment must remain.
func Build(postfix []syntax.Token) (*NFA, error) {
	var stack []*NFA

	pop := func() *NFA {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for i, tok := range postfix {
		need := 0
		switch tok.Kind {
		case syntax.Char:
		case syntax.Star, syntax.Plus, syntax.Question:
			need = 1
		case syntax.Union, syntax.Concat:
			need = 2
		default:
			return nil, &BuildError{Index: i, Token: tok, Err: ErrUnexpectedToken}
		}
		if len(stack) < need {
			return nil, &BuildError{Index: i, Token: tok, Err: ErrMissingOperand}
		}

		switch tok.Kind {
		case syntax.Char:
			stack = append(stack, Literal(tok.Ch))
		case syntax.Union:
			b := pop()
			a := pop()
			stack = append(stack, Union(a, b))
		case syntax.Concat:
			b := pop()
			a := pop()
			stack = append(stack, Concat(a, b))
		case syntax.Star:
			stack = append(stack, Star(pop()))
		case syntax.Plus:
			stack = append(stack, Plus(pop()))
		case syntax.Question:
			stack = append(stack, Optional(pop()))
		}
	}

	switch len(stack) {
	case 0:
		return nil, &BuildError{Index: -1, Err: ErrEmptyExpression}
	case 1:
		return stack[0], nil
	default:
		return nil, &BuildError{Index: -1, Err: ErrDanglingFragments}
	}
}
