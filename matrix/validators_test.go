// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustInts(t, [][]int64{{1}})))
}

func TestValidateShapes(t *testing.T) {
	sq := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	row := MustInts(t, [][]int64{{1, 2, 3}})
	col := MustInts(t, [][]int64{{1}, {2}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(row), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateMulCompatible(sq, col))
	require.ErrorIs(t, matrix.ValidateMulCompatible(col, sq), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, sq), matrix.ErrNilMatrix)

	// rows OR cols equal is enough for Add/Sub.
	require.NoError(t, matrix.ValidateAddCompatible(sq, col))
	require.NoError(t, matrix.ValidateAddCompatible(MustInts(t, [][]int64{{1, 2}}), sq))
	require.ErrorIs(t, matrix.ValidateAddCompatible(row, col), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSameShape(sq, sq.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, col), matrix.ErrDimensionMismatch)
}
