package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulExact(t *testing.T) {
	for _, tc := range []struct {
		a, b     int64
		overflow bool
	}{
		{3, 4, false},
		{0, math.MaxInt64, false},
		{-1, math.MaxInt64, false},
		{math.MaxInt64, 2, true},
		{1 << 32, 1 << 31, true},   // 2^63 wraps to MinInt64
		{-(1 << 62), 2, true},      // exactly MinInt64: excluded
		{1 << 31, 1 << 31, false},  // 2^62
	} {
		c, err := mulExact(tc.a, tc.b)
		if tc.overflow {
			require.ErrorIs(t, err, ErrOverflow, "%d*%d", tc.a, tc.b)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.a*tc.b, c)
	}
}

func TestAddSubExact(t *testing.T) {
	_, err := addExact(math.MaxInt64, 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = addExact(-math.MaxInt64, -1)
	require.ErrorIs(t, err, ErrOverflow)

	v, err := addExact(math.MaxInt64, -math.MaxInt64)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = subExact(0, math.MinInt64)
	require.ErrorIs(t, err, ErrOverflow)

	v, err = subExact(-5, 7)
	require.NoError(t, err)
	require.Equal(t, int64(-12), v)
}

func TestGCD(t *testing.T) {
	require.Equal(t, int64(6), gcd(-12, 18))
	require.Equal(t, int64(5), gcd(0, -5))
	require.Equal(t, int64(1), gcd(17, 4))
}
