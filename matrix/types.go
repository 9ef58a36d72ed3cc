// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Concrete storage lives in dense.go; kernels accept this interface and
// return *Dense.
package matrix

import "github.com/katalvlaran/fracmat/rational"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (rational.Rational, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v rational.Rational) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
