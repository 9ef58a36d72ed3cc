// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for building neutral elements and comparing.
//   - Each facade delegates to the canonical constructor.

package matrix

import "github.com/katalvlaran/fracmat/rational"

// NewZeros returns a zero-filled rows×cols *Dense (alias of NewDense).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = rational.One()
	}

	return I, nil
}

// IdentityLike returns the identity with the order of the square matrix m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity(m.Rows())
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Equal reports whether a and b have the same shape and equal entries.
// Nil operands are never equal. Access errors count as inequality.
func Equal(a, b Matrix) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	ea, err := entries(a)
	if err != nil {
		return false
	}
	eb, err := entries(b)
	if err != nil {
		return false
	}
	for k := range ea {
		if !ea[k].Equal(eb[k]) {
			return false
		}
	}

	return true
}
