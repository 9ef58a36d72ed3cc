// SPDX-License-Identifier: MIT

package expression

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/fracmat/rational"
)

var implicitMul = Token{Kind: KindOperator, Op: '*', Pos: -1}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func bracketOf(c byte) (Bracket, bool, bool) {
	switch c {
	case '(':
		return Round, true, true
	case '[':
		return Square, true, true
	case '{':
		return Curly, true, true
	case ')':
		return Round, false, true
	case ']':
		return Square, false, true
	case '}':
		return Curly, false, true
	}

	return 0, false, false
}

func isOpenByte(c byte) bool {
	_, open, ok := bracketOf(c)
	return ok && open
}

// Tokenize scans s into a token stream and inserts the implicit '*' signs:
//   - before a scalar preceded by anything other than "*([{+-";
//   - after a scalar followed by anything other than ")]}*+-";
//   - after A/B followed by an open bracket;
//   - after a close bracket followed by an open bracket or A/B.
//
// Characters outside the expression alphabet yield ErrInvalidExpression; a
// scalar that does not fit int64 yields rational.ErrOverflow.
func Tokenize(s string) ([]Token, error) {
	tokens := make([]Token, 0, len(s)+len(s)/2)
	n := len(s)
	for i := 0; i < n; i++ {
		c := s[i]
		switch {
		case isDigit(c):
			if i > 0 && !strings.ContainsRune("*([{+-", rune(s[i-1])) {
				tokens = append(tokens, implicitMul)
			}
			start := i
			for i+1 < n && isDigit(s[i+1]) {
				i++
			}
			v, err := strconv.ParseInt(s[start:i+1], 10, 64)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					err = rational.ErrOverflow
				}
				return nil, exprErrorf(opTokenize, offsetErrorf(start, c, err))
			}
			tokens = append(tokens, Token{Kind: KindScalar, Scalar: v, Pos: start})
			if i+1 < n && !strings.ContainsRune(")]}*+-", rune(s[i+1])) {
				tokens = append(tokens, implicitMul)
			}

		case c == 'A' || c == 'B':
			tokens = append(tokens, Token{Kind: KindMatrix, Var: c, Pos: i})
			if i+1 < n && isOpenByte(s[i+1]) {
				tokens = append(tokens, implicitMul)
			}

		case c == '+' || c == '-' || c == '*':
			tokens = append(tokens, Token{Kind: KindOperator, Op: c, Pos: i})

		default:
			kind, open, ok := bracketOf(c)
			if !ok {
				return nil, exprErrorf(opTokenize, offsetErrorf(i, c, ErrInvalidExpression))
			}
			if open {
				tokens = append(tokens, Token{Kind: KindOpen, Bracket: kind, Pos: i})
				continue
			}
			tokens = append(tokens, Token{Kind: KindClose, Bracket: kind, Pos: i})
			if i+1 < n && (isOpenByte(s[i+1]) || s[i+1] == 'A' || s[i+1] == 'B') {
				tokens = append(tokens, implicitMul)
			}
		}
	}

	return tokens, nil
}
