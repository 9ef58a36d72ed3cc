// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag); callers MUST match them via errors.Is.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when an intermediate or final numerator or
	// denominator leaves the representable int64 range.
	ErrOverflow = errors.New("rational: integer overflow")

	// ErrDivisionByZero is returned on division by (or reciprocal of) zero,
	// and when a zero denominator is supplied to New.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax is returned when text cannot be parsed as a number.
	ErrSyntax = errors.New("rational: invalid syntax")
)

// Operation tags used for wrapping.
const (
	opNew         = "New"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opNeg         = "Neg"
	opReciprocal  = "Reciprocal"
	opParse       = "Parse"
	opParseDec    = "ParseDecimal"
)

// rationalErrorf wraps err with an operation tag, preserving it for errors.Is.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
