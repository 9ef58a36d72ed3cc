// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fracmat/rational"
)

// minorOf returns the (rows-1)×(cols-1) flat slice obtained by deleting
// row r and column c from the rows×cols slice data.
func minorOf(data []rational.Rational, rows, cols, r, c int) []rational.Rational {
	out := make([]rational.Rational, 0, (rows-1)*(cols-1))
	var i, j int
	for i = 0; i < rows; i++ {
		if i == r {
			continue
		}
		for j = 0; j < cols; j++ {
			if j == c {
				continue
			}
			out = append(out, data[i*cols+j])
		}
	}

	return out
}

// det evaluates the determinant of the n×n flat slice by Laplace expansion
// along column 0. Orders 1 and 2 use closed forms; zero pivots are skipped.
func det(data []rational.Rational, n int) (rational.Rational, error) {
	switch n {
	case 1:
		return data[0], nil
	case 2:
		ad, err := data[0].Mul(data[3])
		if err != nil {
			return rational.Rational{}, err
		}
		bc, err := data[1].Mul(data[2])
		if err != nil {
			return rational.Rational{}, err
		}

		return ad.Sub(bc)
	}

	var (
		acc  = rational.Zero()
		term rational.Rational
		sub  rational.Rational
		err  error
	)
	for i := 0; i < n; i++ {
		pivot := data[i*n]
		if pivot.IsZero() {
			continue
		}
		if sub, err = det(minorOf(data, n, n, i, 0), n-1); err != nil {
			return rational.Rational{}, err
		}
		if term, err = pivot.Mul(sub); err != nil {
			return rational.Rational{}, err
		}
		// (-1)^i alternation.
		if i%2 == 1 {
			acc, err = acc.Sub(term)
		} else {
			acc, err = acc.Add(term)
		}
		if err != nil {
			return rational.Rational{}, err
		}
	}

	return acc, nil
}

// ComplementaryMinor returns m with row i and column j removed.
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions when m has a single row or column;
//     ErrOutOfRange for i/j outside m.
func ComplementaryMinor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	em, err := entries(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return &Dense{r: rows - 1, c: cols - 1, data: minorOf(em, rows, cols, i, j)}, nil
}

// Determinant computes det(m) exactly.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: order 1 -> the entry; order 2 -> ad - bc;
//     otherwise Σ (-1)^i · m[i][0] · det(minor(i,0)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, rational.ErrOverflow.
//
// Complexity:
//   - Time O(n!) worst case; zero entries in column 0 prune whole subtrees.
//
// AI-Hints:
//   - Intended for the small grids the calculator accepts (≤10×10).
func Determinant(m Matrix) (rational.Rational, error) {
	if err := ValidateSquare(m); err != nil {
		return rational.Rational{}, matrixErrorf(opDeterminant, err)
	}
	em, err := entries(m)
	if err != nil {
		return rational.Rational{}, matrixErrorf(opDeterminant, err)
	}
	d, err := det(em, m.Rows())
	if err != nil {
		return rational.Rational{}, matrixErrorf(opDeterminant, err)
	}

	return d, nil
}

// Cofactors returns the matrix C with C[i][j] = (-1)^(i+j)·det(minor(i,j)).
// The cofactor matrix of a 1×1 matrix is [[1]].
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := m.Rows()
	res, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if n == 1 {
		return res, nil
	}
	em, err := entries(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	var (
		i, j int
		d    rational.Rational
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d, err = det(minorOf(em, n, n, i, j), n-1); err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			if (i+j)%2 == 1 {
				if d, err = d.Neg(); err != nil {
					return nil, matrixErrorf(opCofactors, err)
				}
			}
			res.data[i*n+j] = d
		}
	}

	return res, nil
}

// Inverse returns m⁻¹ = (1/det)·Cofactors(m)ᵀ.
// A singular matrix is not an error: it yields (nil, false, nil).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, rational.ErrOverflow.
func Inverse(m Matrix) (*Dense, bool, error) {
	d, err := Determinant(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if d.IsZero() {
		return nil, false, nil
	}
	cof, err := Cofactors(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	inv, err := d.Reciprocal()
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	res, err := Scale(adj, inv)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	return res, true, nil
}
