// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fracmat/rational"
)

// addSub computes a ± b entry-wise over a's shape.
// When the shapes are identical both operands are read from flat slices;
// otherwise b is indexed through At so a smaller b surfaces ErrOutOfRange.
func addSub(a, b Matrix, subtract bool, tag string) (*Dense, error) {
	if err := ValidateAddCompatible(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	ea, err := entries(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	op := rational.Rational.Add
	if subtract {
		op = rational.Rational.Sub
	}

	var (
		i, j   int
		av, bv rational.Rational
	)
	sameShape := rows == b.Rows() && cols == b.Cols()
	var eb []rational.Rational
	if sameShape {
		if eb, err = entries(b); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av = ea[i*cols+j]
			if sameShape {
				bv = eb[i*cols+j]
			} else if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if res.data[i*cols+j], err = op(av, bv); err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add returns a + b computed entry-wise over a's shape.
// Implementation:
//   - Stage 1: ValidateAddCompatible (rows equal OR cols equal).
//   - Stage 2: Flat loop when shapes match; At-indexed b otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange (b smaller than a),
//     rational.ErrOverflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b under the same rules as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, rational.ErrOverflow.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ea, err := entries(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	eb, err := entries(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		av, p, acc rational.Rational
	)
	for i = 0; i < aRows; i++ {
		for k = 0; k < aCols; k++ {
			av = ea[i*aCols+k]
			if av.IsZero() {
				continue
			}
			for j = 0; j < bCols; j++ {
				if p, err = av.Mul(eb[k*bCols+j]); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
				}
				acc = res.data[i*bCols+j]
				if res.data[i*bCols+j], err = acc.Add(p); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
				}
			}
		}
	}

	return res, nil
}

// Scale returns s·m.
func Scale(m Matrix, s rational.Rational) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	em, err := entries(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k := range em {
		if res.data[k], err = em[k].Mul(s); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	return res, nil
}

// ScaleInt returns k·m for an integer k.
func ScaleInt(m Matrix, k int64) (*Dense, error) {
	s, err := rational.New(k, 1)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return Scale(m, s)
}

// Power returns m^n by repeated left multiplication starting from the
// identity; m^0 is the identity of m's order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeExponent, rational.ErrOverflow.
//
// Complexity:
//   - Time O(n·k^3) for a k×k matrix.
func Power(m Matrix, n int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPower, ErrNegativeExponent)
	}
	res, err := NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	for step := 0; step < n; step++ {
		if res, err = Mul(res, m); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return res, nil
}

// Transpose returns mᵀ (cols×rows). The input is never mutated.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	em, err := entries(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = em[i*cols+j]
		}
	}

	return res, nil
}
