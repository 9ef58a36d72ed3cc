// SPDX-License-Identifier: MIT

package expression

// IsValid reports whether s is a well-formed expression. It never panics
// and never returns an error: a tokenizer failure simply counts as invalid.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	tokens, err := Tokenize(s)
	if err != nil {
		return false
	}

	return validTokens(tokens)
}

func validTokens(tokens []Token) bool {
	return scalarSignsOK(tokens) && structureOK(tokens)
}

// scalarSignsOK applies the bare-scalar rule on the bracket-free stream.
// A scalar is rejected when it is the whole stream, when it starts the
// stream and is followed by a sign, when it ends the stream and is preceded
// by a sign, or when it sits between two signs.
func scalarSignsOK(tokens []Token) bool {
	flat := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != KindOpen && t.Kind != KindClose {
			flat = append(flat, t)
		}
	}
	last := len(flat) - 1
	for k, t := range flat {
		if t.Kind != KindScalar {
			continue
		}
		if last == 0 {
			return false
		}
		prevSign := k > 0 && flat[k-1].isSign()
		nextSign := k < last && flat[k+1].isSign()
		switch {
		case k == 0 && nextSign:
			return false
		case k == last && prevSign:
			return false
		case prevSign && nextSign:
			return false
		}
	}

	return true
}

// structureOK runs the bracket stack and operand/operator alternation.
//   - '{' opens only on an empty stack; '[' only on an empty stack or under
//     '{'; '(' anywhere. Every open bracket needs an operand slot.
//   - A close bracket must match the top of the stack and leaves an operator
//     slot.
//   - Operands (A, B, scalars) need an operand slot and leave an operator slot.
//   - '*' needs an operator slot and may not end the stream.
//   - '+' and '-' at the start or right after an open bracket are unary;
//     all other signs follow the '*' rule.
func structureOK(tokens []Token) bool {
	var (
		stack     []Bracket
		expectOp  bool
		lastIndex = len(tokens) - 1
	)
	for i, t := range tokens {
		switch t.Kind {
		case KindOpen:
			if expectOp {
				return false
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				switch t.Bracket {
				case Curly:
					return false
				case Square:
					if top != Curly {
						return false
					}
				}
			}
			stack = append(stack, t.Bracket)

		case KindClose:
			if len(stack) == 0 || stack[len(stack)-1] != t.Bracket {
				return false
			}
			stack = stack[:len(stack)-1]
			expectOp = true

		case KindMatrix, KindScalar:
			if expectOp {
				return false
			}
			expectOp = true

		case KindOperator:
			if t.isSign() && (i == 0 || tokens[i-1].Kind == KindOpen) {
				expectOp = true
			}
			if !expectOp || i == lastIndex {
				return false
			}
			expectOp = false

		default:
			return false
		}
	}

	return len(stack) == 0
}
