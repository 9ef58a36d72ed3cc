// SPDX-License-Identifier: MIT

// Package matrix implements an exact matrix algebra kernel over rational.Rational.
//
// Overview:
//   - Matrix is the mutable two-dimensional interface; *Dense is the row-major
//     implementation every kernel returns.
//   - Kernels never mutate their inputs and always allocate a fresh result.
//   - Validators (validators.go) are the single source of shape checks.
//
// Kernels:
//   - Add, Sub: entry-wise over the left operand's shape. Operands are accepted
//     when they agree in rows OR in columns.
//   - Mul, Scale, ScaleInt, Power, Transpose.
//   - ComplementaryMinor, Determinant (Laplace expansion along column 0),
//     Cofactors, Inverse (adjugate over determinant; singular reports ok=false).
//   - IsRowEchelonForm, RowEchelonForm (Gaussian elimination with full-row
//     swaps), Rank.
//
// Errors:
//   - Sentinels live in errors.go and are matched with errors.Is. Arithmetic
//     faults from the rational package (ErrOverflow, ErrDivisionByZero) pass
//     through wrapped with the operation name.
//
// Example:
//
//	a, _ := matrix.NewFromInts([][]int64{{1, 2}, {3, 4}})
//	d, _ := matrix.Determinant(a) // -2
//	inv, ok, _ := matrix.Inverse(a)
//	_ = ok && inv != nil
package matrix
