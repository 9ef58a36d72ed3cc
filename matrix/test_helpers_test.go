// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures for kernels.
//   - Force the At-based fallback paths through the hide wrapper.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/matrix"
	"github.com/katalvlaran/fracmat/rational"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels take the generic At path instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// MustInts builds a *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) rational.Rational {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Q is shorthand for an exact fraction literal.
func Q(num, den int64) rational.Rational { return rational.MustNew(num, den) }

// requireEqual asserts matrix equality with a readable diff on failure.
func requireEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "want:\n%v\ngot:\n%v", want, got)
}
