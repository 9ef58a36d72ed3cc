// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/fracmat/rational"
)

// Context tags for indexed access errors.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Dense is a row-major rows×cols matrix of rationals backed by a flat slice.
//
// Invariants:
//   - r > 0, c > 0, len(data) == r*c.
//   - Every stored entry is canonical (the zero value of Rational is 0).
//
// Rows handed out by RowsCopy are independent copies; mutating them never
// touches the matrix.
type Dense struct {
	r, c int
	data []rational.Rational
}

// Compile-time assertion.
var _ Matrix = (*Dense)(nil)

// NewDense allocates a rows×cols matrix filled with zeros.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]rational.Rational, rows*cols)
	for k := range data {
		data[k] = rational.Zero()
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows builds a matrix from row slices. The input is copied.
// Returns ErrInvalidDimensions for no rows or an empty first row and
// ErrDimensionMismatch for ragged input.
func NewFromRows(rows [][]rational.Rational) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	var i int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, matrixErrorf(opNewFromRows, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// NewFromInts builds a matrix of integers. Same shape rules as NewFromRows.
// An entry equal to math.MinInt64 yields rational.ErrOverflow.
func NewFromInts(rows [][]int64) (*Dense, error) {
	conv := make([][]rational.Rational, len(rows))
	var i, j int
	for i = range rows {
		conv[i] = make([]rational.Rational, len(rows[i]))
		for j = range rows[i] {
			v, err := rational.New(rows[i][j], 1)
			if err != nil {
				return nil, matrixErrorf(opNewFromRows, err)
			}
			conv[i][j] = v
		}
	}

	return NewFromRows(conv)
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to a flat offset or ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (rational.Rational, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return rational.Rational{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v rational.Rational) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with a fresh buffer.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	data := make([]rational.Rational, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// RowsCopy returns the entries as independent row slices.
func (m *Dense) RowsCopy() [][]rational.Rational {
	out := make([][]rational.Rational, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]rational.Rational, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows on separate lines with space-separated entries,
// each in canonical "p" or "p/q" form.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
	}

	return sb.String()
}

// entries returns the row-major contents of m. For *Dense it returns the
// backing slice directly (callers must not write to it); other
// implementations are read through At.
func entries(m Matrix) ([]rational.Rational, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]rational.Rational, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}
