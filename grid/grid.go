// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fracmat/matrix"
	"github.com/katalvlaran/fracmat/rational"
)

// Default bounds.
const (
	DefaultMaxRows = 10
	DefaultMaxCols = 10
)

// Policy bounds the shape of input grids.
type Policy struct {
	MaxRows int `toml:"max_rows" yaml:"max_rows"`
	MaxCols int `toml:"max_cols" yaml:"max_cols"`
}

// DefaultPolicy returns the 10×10 policy.
func DefaultPolicy() Policy {
	return Policy{MaxRows: DefaultMaxRows, MaxCols: DefaultMaxCols}
}

// Check reports ErrInvalidPolicy when a bound is not positive.
func (p Policy) Check() error {
	if p.MaxRows <= 0 || p.MaxCols <= 0 {
		return gridErrorf("Policy.Check", fmt.Errorf("%dx%d: %w", p.MaxRows, p.MaxCols, ErrInvalidPolicy))
	}

	return nil
}

// Validate checks a rows×cols shape against the policy.
func (p Policy) Validate(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return gridErrorf("Policy.Validate", ErrEmptyGrid)
	}
	if rows > p.MaxRows || cols > p.MaxCols {
		return gridErrorf("Policy.Validate",
			fmt.Errorf("%dx%d > %dx%d: %w", rows, cols, p.MaxRows, p.MaxCols, ErrGridTooLarge))
	}

	return nil
}

// ParseCellStrict parses one cell. Empty text is 0.
func ParseCellStrict(text string) (rational.Rational, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return rational.Zero(), nil
	}

	return rational.Parse(text)
}

// ParseCell parses one cell, mapping malformed text (including overflow
// and a zero denominator) to 0.
func ParseCell(text string) rational.Rational {
	v, err := ParseCellStrict(text)
	if err != nil {
		return rational.Zero()
	}

	return v
}

// Build converts cell text into a matrix. Malformed cells become 0.
func (p Policy) Build(cells [][]string) (*matrix.Dense, error) {
	return p.build(cells, false)
}

// BuildStrict is Build but fails on the first malformed cell.
func (p Policy) BuildStrict(cells [][]string) (*matrix.Dense, error) {
	return p.build(cells, true)
}

func (p Policy) build(cells [][]string, strict bool) (*matrix.Dense, error) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	if err := p.Validate(rows, cols); err != nil {
		return nil, err
	}
	out := make([][]rational.Rational, rows)
	var i, j int
	for i = range cells {
		if len(cells[i]) != cols {
			return nil, gridErrorf("Build", fmt.Errorf("row %d has %d cells, want %d: %w", i, len(cells[i]), cols, ErrRaggedGrid))
		}
		out[i] = make([]rational.Rational, cols)
		for j = range cells[i] {
			if !strict {
				out[i][j] = ParseCell(cells[i][j])
				continue
			}
			v, err := ParseCellStrict(cells[i][j])
			if err != nil {
				return nil, gridErrorf("Build", fmt.Errorf("cell (%d,%d) %q: %w", i, j, cells[i][j], err))
			}
			out[i][j] = v
		}
	}

	return matrix.NewFromRows(out)
}

// SplitRows splits the inline syntax "1,2;3,4" into cell text. Rows are
// separated by ';' and cells by ','; surrounding spaces are trimmed.
func SplitRows(s string) [][]string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	rowTexts := strings.Split(s, ";")
	cells := make([][]string, len(rowTexts))
	for i, r := range rowTexts {
		parts := strings.Split(r, ",")
		for k := range parts {
			parts[k] = strings.TrimSpace(parts[k])
		}
		cells[i] = parts
	}

	return cells
}

// ParseRows builds a matrix from the inline syntax under p.
func (p Policy) ParseRows(s string) (*matrix.Dense, error) {
	return p.Build(SplitRows(s))
}
