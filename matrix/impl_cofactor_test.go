// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/matrix"
	"github.com/katalvlaran/fracmat/rational"
)

func TestComplementaryMinor(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	m, err := matrix.ComplementaryMinor(a, 1, 0)
	require.NoError(t, err)
	requireEqual(t, MustInts(t, [][]int64{{2, 3}, {8, 9}}), m)

	_, err = matrix.ComplementaryMinor(a, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.ComplementaryMinor(MustInts(t, [][]int64{{1, 2}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDeterminant(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   [][]int64
		want rational.Rational
	}{
		{"1x1", [][]int64{{-7}}, Q(-7, 1)},
		{"2x2", [][]int64{{1, 2}, {3, 4}}, Q(-2, 1)},
		{"3x3", [][]int64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, Q(6, 1)},
		{"singular", [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, Q(0, 1)},
		{"zero-col0", [][]int64{{0, 1, 2}, {0, 3, 4}, {5, 6, 7}}, Q(-10, 1)},
		{"4x4", [][]int64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, Q(30, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant(MustInts(t, tc.in))
			require.NoError(t, err)
			require.True(t, d.Equal(tc.want), "got %v", d)
		})
	}

	_, err := matrix.Determinant(MustInts(t, [][]int64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant_TransposeInvariant(t *testing.T) {
	a := MustInts(t, [][]int64{{3, -1, 4}, {1, 5, -9}, {2, 6, 5}})
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)

	d1, err := matrix.Determinant(a)
	require.NoError(t, err)
	d2, err := matrix.Determinant(hide{tr})
	require.NoError(t, err)
	require.True(t, d1.Equal(d2))
}

func TestCofactors(t *testing.T) {
	c, err := matrix.Cofactors(MustInts(t, [][]int64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	requireEqual(t, MustInts(t, [][]int64{{4, -3}, {-2, 1}}), c)

	one, err := matrix.Cofactors(MustInts(t, [][]int64{{5}}))
	require.NoError(t, err)
	requireEqual(t, MustInts(t, [][]int64{{1}}), one)
}

func TestInverse(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	inv, ok, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, ok)
	want, err := matrix.NewFromRows([][]rational.Rational{{Q(-2, 1), Q(1, 1)}, {Q(3, 2), Q(-1, 2)}})
	require.NoError(t, err)
	requireEqual(t, want, inv)

	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	p, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireEqual(t, I, p)
	p, err = matrix.Mul(inv, a)
	require.NoError(t, err)
	requireEqual(t, I, p)
}

func TestInverse_3x3RoundTrip(t *testing.T) {
	a := MustInts(t, [][]int64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	inv, ok, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, ok)
	I, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	p, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireEqual(t, I, p)
}

func TestInverse_SingularAndOneByOne(t *testing.T) {
	inv, ok, err := matrix.Inverse(MustInts(t, [][]int64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, inv)

	inv, ok, err = matrix.Inverse(MustInts(t, [][]int64{{4}}))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, MustAt(t, inv, 0, 0).Equal(Q(1, 4)))

	_, _, err = matrix.Inverse(MustInts(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
