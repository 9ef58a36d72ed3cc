// SPDX-License-Identifier: MIT

// Package expression parses and evaluates matrix expressions over two
// operands A and B.
//
// The alphabet is digits, A, B, + - *, and the brackets ( ) [ ] { }.
// Evaluation runs in three phases:
//
//  1. Tokenize: scan into a typed Token stream, inserting implicit '*'
//     ("2A" becomes "2*A", "A(B)" becomes "A*(B)", ")(" becomes ")*(").
//  2. IsValid: a bare-scalar sign rule plus a bracket/operand automaton.
//     Curly brackets nest only at top level, square brackets only at top
//     level or directly under curly, round brackets anywhere.
//  3. Evaluate: round groups are resolved innermost first (repeatedly), then
//     square, then curly. Each group is a simple expression evaluated with a
//     leading unary sign first, then '*' left to right, then '+'/'-' left to
//     right. A bare scalar k stands for k·I with the order of A.
//
// Arithmetic faults (rational.ErrOverflow, rational.ErrDivisionByZero) and
// shape faults from package matrix propagate unchanged in identity.
//
// Example:
//
//	res, err := expression.Evaluate("{A*[4(A-3B)]}", a, b)
package expression
