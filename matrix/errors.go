// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No kernel panics on user-triggered error
// conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> arithmetic (rational.ErrOverflow / ErrDivisionByZero).

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows<=0 or cols<=0) or when row data is empty.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols != b.Rows, or ragged row data.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNegativeExponent is returned by Power for n < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// Operation tags used as error prefixes.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opScale        = "Scale"
	opPower        = "Power"
	opTranspose    = "Transpose"
	opMinor        = "ComplementaryMinor"
	opDeterminant  = "Determinant"
	opCofactors    = "Cofactors"
	opInverse      = "Inverse"
	opEchelon      = "RowEchelonForm"
	opIsEchelon    = "IsRowEchelonForm"
	opRank         = "Rank"
	opNewFromRows  = "NewFromRows"
	opIdentityLike = "IdentityLike"
)

// matrixErrorf wraps err with the kernel tag, keeping errors.Is semantics.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf formats an indexed access error as "Dense.<op>(i,j): <err>".
func denseErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, i, j, err)
}
