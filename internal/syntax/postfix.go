package syntax

// ToPostfix reorders an infix token sequence (with explicit Concat tokens)
// into postfix order using the shunting-yard algorithm. Operators of equal
// precedence are left associative. Parentheses are dropped from the
// output; an unmatched one of either kind is an ErrUnbalancedParen.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case Char:
			out = append(out, tok)
		case LeftParen:
			stack = append(stack, tok)
		case RightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LeftParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, &Error{Pos: tok.Pos, Err: ErrUnbalancedParen}
			}
		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == LeftParen || top.precedence() < tok.precedence() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == LeftParen {
			return nil, &Error{Pos: top.Pos, Err: ErrUnbalancedParen}
		}
		out = append(out, top)
	}
	return out, nil
}

// Parse tokenizes pattern and converts it to postfix.
func Parse(pattern string) ([]Token, error) {
	return ToPostfix(Tokenize(pattern))
}
