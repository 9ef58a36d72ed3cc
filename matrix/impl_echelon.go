// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fracmat/rational"

// leadingZeros counts zero entries at the start of row i of a rows×cols slice.
func leadingZeros(data []rational.Rational, cols, i int) int {
	n := 0
	for n < cols && data[i*cols+n].IsZero() {
		n++
	}

	return n
}

// isEchelon applies the row-echelon test to a flat slice: the leading-zero
// count strictly increases from row to row until the first all-zero row,
// and every row after an all-zero row is all-zero as well.
func isEchelon(data []rational.Rational, rows, cols int) bool {
	prev := -1
	for i := 0; i < rows; i++ {
		z := leadingZeros(data, cols, i)
		if z < prev || (z == prev && z != cols) {
			return false
		}
		prev = z
	}

	return true
}

// IsRowEchelonForm reports whether m is in row-echelon form.
func IsRowEchelonForm(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsEchelon, err)
	}
	em, err := entries(m)
	if err != nil {
		return false, matrixErrorf(opIsEchelon, err)
	}

	return isEchelon(em, m.Rows(), m.Cols()), nil
}

// RowEchelonForm reduces a private copy of m by Gaussian elimination.
// Implementation:
//   - Stage 1: copy m; stop immediately if it is already in echelon form.
//   - Stage 2: from (row, col), find the leftmost column ≥ col holding a
//     nonzero entry at or below row; swap that row up (full-row swap).
//   - Stage 3: for each lower row k with a nonzero entry in the pivot column,
//     subtract row·(m[k][col]/pivot) from column col onwards.
//   - Stage 4: advance to (row+1, col+1) until echelon form is reached or no
//     pivot column remains.
//
// Behavior highlights:
//   - An input already in echelon form is returned unchanged (idempotent).
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, rational.ErrOverflow.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c).
func RowEchelonForm(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	em, err := entries(m)
	if err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	res := &Dense{r: m.Rows(), c: m.Cols(), data: append([]rational.Rational(nil), em...)}
	rows, cols, d := res.r, res.c, res.data

	var (
		row, col, i, k, z int
		factor, p         rational.Rational
	)
	for row < rows && col < cols && !isEchelon(d, rows, cols) {
		// Stage 2: locate pivot.
		pivotRow := -1
		for ; col < cols && pivotRow < 0; col++ {
			for i = row; i < rows; i++ {
				if !d[i*cols+col].IsZero() {
					pivotRow = i
					break
				}
			}
		}
		if pivotRow < 0 {
			break
		}
		col-- // loop post-increment overshoots the pivot column
		if pivotRow != row {
			for z = 0; z < cols; z++ {
				d[row*cols+z], d[pivotRow*cols+z] = d[pivotRow*cols+z], d[row*cols+z]
			}
		}

		// Stage 3: eliminate below the pivot.
		pivot := d[row*cols+col]
		for k = row + 1; k < rows; k++ {
			if d[k*cols+col].IsZero() {
				continue
			}
			if factor, err = d[k*cols+col].Div(pivot); err != nil {
				return nil, matrixErrorf(opEchelon, err)
			}
			for z = col; z < cols; z++ {
				if p, err = d[row*cols+z].Mul(factor); err != nil {
					return nil, matrixErrorf(opEchelon, err)
				}
				if d[k*cols+z], err = d[k*cols+z].Sub(p); err != nil {
					return nil, matrixErrorf(opEchelon, err)
				}
			}
		}

		// Stage 4: advance.
		row++
		col++
	}

	return res, nil
}

// Rank returns the number of nonzero rows of RowEchelonForm(m).
func Rank(m Matrix) (int, error) {
	ref, err := RowEchelonForm(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	rank := ref.r
	for i := 0; i < ref.r; i++ {
		if leadingZeros(ref.data, ref.c, i) == ref.c {
			rank--
		}
	}

	return rank, nil
}
