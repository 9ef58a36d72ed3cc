// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"strings"

	"github.com/katalvlaran/fracmat/expression"
	"github.com/katalvlaran/fracmat/grid"
	"github.com/katalvlaran/fracmat/internal/config"
	"github.com/katalvlaran/fracmat/matrix"
	"github.com/katalvlaran/fracmat/rational"
)

// renderMatrix formats m in the configured output format.
func renderMatrix(m *matrix.Dense, format string) string {
	rows := m.RowsCopy()
	var sb strings.Builder
	switch format {
	case config.FormatLatex:
		sb.WriteString("\\begin{pmatrix}\n")
		for i, row := range rows {
			for j, v := range row {
				if j > 0 {
					sb.WriteString(" & ")
				}
				sb.WriteString(v.Latex())
			}
			if i < len(rows)-1 {
				sb.WriteString(" \\\\")
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("\\end{pmatrix}")

	case config.FormatBraces:
		sb.WriteByte('{')
		for i, row := range rows {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('{')
			for j, v := range row {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(v.String())
			}
			sb.WriteByte('}')
		}
		sb.WriteByte('}')

	default:
		sb.WriteString(m.String())
	}

	return sb.String()
}

// renderScalar formats a single value.
func renderScalar(v rational.Rational, format string) string {
	if format == config.FormatLatex {
		return v.Latex()
	}

	return v.String()
}

// describe maps an error to the user-facing class shown before it.
func describe(err error) string {
	switch {
	case errors.Is(err, rational.ErrOverflow):
		return "arithmetic overflow (values exceed the 64-bit range)"
	case errors.Is(err, rational.ErrDivisionByZero):
		return "division by zero"
	case errors.Is(err, expression.ErrInvalidExpression):
		return "invalid expression"
	case errors.Is(err, expression.ErrEvaluation):
		return "expression could not be evaluated"
	case errors.Is(err, matrix.ErrNonSquare):
		return "the matrix must be square"
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrOutOfRange):
		return "dimension mismatch"
	case errors.Is(err, matrix.ErrNegativeExponent):
		return "the exponent must be non-negative"
	case errors.Is(err, grid.ErrGridTooLarge):
		return "grid too large"
	case errors.Is(err, grid.ErrRaggedGrid), errors.Is(err, grid.ErrEmptyGrid):
		return "malformed grid"
	case errors.Is(err, errMissingOperand), errors.Is(err, matrix.ErrNilMatrix):
		return "missing operand"
	case errors.Is(err, config.ErrInvalidConfig):
		return "invalid configuration"
	}

	return "error"
}
