// SPDX-License-Identifier: MIT

package expression

import (
	"strconv"
	"strings"
)

// Kind tags the variant carried by a Token.
type Kind uint8

// Token kinds.
const (
	KindScalar   Kind = iota + 1 // non-negative integer literal
	KindMatrix                   // A or B
	KindOperator                 // + - *
	KindOpen                     // ( [ {
	KindClose                    // ) ] }
	KindResult                   // reference to an evaluator result slot
)

// Bracket is the kind of an Open or Close token.
type Bracket uint8

// Bracket kinds in resolution order.
const (
	Round Bracket = iota + 1
	Square
	Curly
)

// String returns the bracket name.
func (b Bracket) String() string {
	switch b {
	case Round:
		return "round"
	case Square:
		return "square"
	case Curly:
		return "curly"
	}

	return "none"
}

// open and close return the source characters of the bracket.
func (b Bracket) open() byte  { return "?([{"[b] }
func (b Bracket) close() byte { return "?)]}"[b] }

// Token is one element of a normalized expression stream. Only the field
// matching Kind is meaningful.
type Token struct {
	Kind    Kind
	Scalar  int64   // KindScalar
	Var     byte    // KindMatrix: 'A' or 'B'
	Op      byte    // KindOperator: '+', '-', '*'
	Bracket Bracket // KindOpen, KindClose
	Slot    int     // KindResult
	Pos     int     // byte offset in the source; -1 for inserted '*'
}

// isOperand reports whether t can stand on either side of a binary operator.
func (t Token) isOperand() bool {
	return t.Kind == KindScalar || t.Kind == KindMatrix || t.Kind == KindResult
}

// isSign reports whether t is a '+' or '-' operator.
func (t Token) isSign() bool {
	return t.Kind == KindOperator && (t.Op == '+' || t.Op == '-')
}

// String renders a single token; result slots render as "#<slot>".
func (t Token) String() string {
	switch t.Kind {
	case KindScalar:
		return strconv.FormatInt(t.Scalar, 10)
	case KindMatrix:
		return string(t.Var)
	case KindOperator:
		return string(t.Op)
	case KindOpen:
		return string(t.Bracket.open())
	case KindClose:
		return string(t.Bracket.close())
	case KindResult:
		return "#" + strconv.Itoa(t.Slot)
	}

	return "?"
}

// Render joins tokens back into expression text, including any inserted
// multiplication signs.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.String())
	}

	return sb.String()
}
