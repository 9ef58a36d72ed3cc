// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/matrix"
)

func TestIsRowEchelonForm(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   [][]int64
		want bool
	}{
		{"identity", [][]int64{{1, 0}, {0, 1}}, true},
		{"upper", [][]int64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}}, true},
		{"zero-rows-last", [][]int64{{1, 2}, {0, 0}, {0, 0}}, true},
		{"all-zero", [][]int64{{0, 0}, {0, 0}}, true},
		{"equal-leading", [][]int64{{1, 2}, {3, 4}}, false},
		{"zero-row-first", [][]int64{{0, 0}, {1, 2}}, false},
		{"column-ok", [][]int64{{1}, {0}}, true},
		{"column-not", [][]int64{{1}, {1}}, false},
		{"skip-col", [][]int64{{1, 2, 3}, {0, 0, 5}}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matrix.IsRowEchelonForm(MustInts(t, tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}

	_, err := matrix.IsRowEchelonForm(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowEchelonForm(t *testing.T) {
	a := MustInts(t, [][]int64{{0, 2, 4}, {1, 1, 1}, {2, 4, 6}})
	ref, err := matrix.RowEchelonForm(a)
	require.NoError(t, err)

	ok, err := matrix.IsRowEchelonForm(ref)
	require.NoError(t, err)
	require.True(t, ok, "got:\n%v", ref)
	// Row swap brought the 1 up; input untouched.
	require.True(t, MustAt(t, ref, 0, 0).Equal(Q(1, 1)))
	requireEqual(t, MustInts(t, [][]int64{{0, 2, 4}, {1, 1, 1}, {2, 4, 6}}), a)

	// Idempotent.
	again, err := matrix.RowEchelonForm(ref)
	require.NoError(t, err)
	requireEqual(t, ref, again)
}

func TestRowEchelonForm_ZeroColumn(t *testing.T) {
	ref, err := matrix.RowEchelonForm(MustInts(t, [][]int64{{0, 1}, {0, 1}}))
	require.NoError(t, err)
	requireEqual(t, MustInts(t, [][]int64{{0, 1}, {0, 0}}), ref)
}

func TestRank(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   [][]int64
		want int
	}{
		{"identity", [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"singular", [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 2},
		{"dependent", [][]int64{{1, 2}, {2, 4}}, 1},
		{"zero", [][]int64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]int64{{1, 2, 3, 4}, {2, 4, 6, 9}}, 2},
		{"tall", [][]int64{{1, 2}, {2, 4}, {3, 7}}, 2},
		{"column", [][]int64{{1}, {1}}, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustInts(t, tc.in)
			r, err := matrix.Rank(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
			require.LessOrEqual(t, r, min(m.Rows(), m.Cols()))

			// rank(A) == rank(Aᵀ)
			tr, err := matrix.Transpose(m)
			require.NoError(t, err)
			rt, err := matrix.Rank(hide{tr})
			require.NoError(t, err)
			require.Equal(t, r, rt)
		})
	}
}

func TestRank_MatchesDeterminant(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}})
	d, err := matrix.Determinant(a)
	require.NoError(t, err)
	r, err := matrix.Rank(a)
	require.NoError(t, err)
	require.False(t, d.IsZero())
	require.Equal(t, 3, r)
}
