package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/rational"
)

// samples is a small grid of in-range operands used by the algebraic-law tests.
func samples(t *testing.T) []rational.Rational {
	t.Helper()
	var out []rational.Rational
	for _, p := range [][2]int64{{0, 1}, {1, 1}, {-1, 1}, {1, 2}, {-2, 3}, {5, 7}, {-11, 4}, {9, 1}} {
		out = append(out, R(t, p[0], p[1]))
	}

	return out
}

func mustAdd(t *testing.T, a, b rational.Rational) rational.Rational {
	t.Helper()
	s, err := a.Add(b)
	require.NoError(t, err)

	return s
}

func mustMul(t *testing.T, a, b rational.Rational) rational.Rational {
	t.Helper()
	p, err := a.Mul(b)
	require.NoError(t, err)

	return p
}

func TestArithmetic_Basic(t *testing.T) {
	half, third := R(t, 1, 2), R(t, 1, 3)

	sum, err := half.Add(third)
	require.NoError(t, err)
	require.True(t, sum.Equal(R(t, 5, 6)))

	diff, err := half.Sub(third)
	require.NoError(t, err)
	require.True(t, diff.Equal(R(t, 1, 6)))

	prod, err := half.Mul(third)
	require.NoError(t, err)
	require.True(t, prod.Equal(R(t, 1, 6)))

	quo, err := half.Div(third)
	require.NoError(t, err)
	require.True(t, quo.Equal(R(t, 3, 2)))

	inv, err := R(t, -2, 5).Reciprocal()
	require.NoError(t, err)
	require.True(t, inv.Equal(R(t, -5, 2)))
	require.Positive(t, inv.Den())

	neg, err := half.Neg()
	require.NoError(t, err)
	require.True(t, neg.Equal(R(t, -1, 2)))
}

func TestArithmetic_Laws(t *testing.T) {
	xs := samples(t)
	for _, a := range xs {
		for _, b := range xs {
			require.True(t, mustAdd(t, a, b).Equal(mustAdd(t, b, a)), "add commutes %v %v", a, b)
			require.True(t, mustMul(t, a, b).Equal(mustMul(t, b, a)), "mul commutes %v %v", a, b)
			for _, c := range xs {
				require.True(t, mustAdd(t, mustAdd(t, a, b), c).Equal(mustAdd(t, a, mustAdd(t, b, c))))
				require.True(t, mustMul(t, mustMul(t, a, b), c).Equal(mustMul(t, a, mustMul(t, b, c))))
				// a*(b+c) == a*b + a*c
				left := mustMul(t, a, mustAdd(t, b, c))
				right := mustAdd(t, mustMul(t, a, b), mustMul(t, a, c))
				require.True(t, left.Equal(right), "distributivity %v %v %v", a, b, c)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := rational.One().Div(rational.Zero())
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = rational.Zero().Reciprocal()
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestOverflow_Detected(t *testing.T) {
	big := rational.FromInt(math.MaxInt64/2 + 1)

	_, err := big.Mul(rational.FromInt(2))
	require.ErrorIs(t, err, rational.ErrOverflow, "numerator product must not wrap")

	_, err = rational.FromInt(math.MaxInt64).Add(rational.One())
	require.ErrorIs(t, err, rational.ErrOverflow)

	_, err = rational.FromInt(-math.MaxInt64).Sub(rational.One())
	require.ErrorIs(t, err, rational.ErrOverflow, "MinInt64 is outside the range")

	// Denominator product overflows even though the numerators are tiny.
	tiny := R(t, 1, math.MaxInt64/3)
	_, err = tiny.Mul(tiny)
	require.ErrorIs(t, err, rational.ErrOverflow)

	// Cross product in Add overflows before any reduction.
	_, err = R(t, math.MaxInt64/2, 7).Add(R(t, 1, 5))
	require.ErrorIs(t, err, rational.ErrOverflow)
}

func TestProductAndSum(t *testing.T) {
	p, err := rational.Product(R(t, 2, 3), R(t, 3, 4), rational.FromInt(-2))
	require.NoError(t, err)
	require.True(t, p.Equal(rational.FromInt(-1)))

	p, err = rational.Product()
	require.NoError(t, err)
	require.True(t, p.Equal(rational.One()))

	s, err := rational.Sum(R(t, 1, 2), R(t, 1, 3), R(t, 1, 6))
	require.NoError(t, err)
	require.True(t, s.Equal(rational.One()))

	_, err = rational.Product(rational.FromInt(math.MaxInt64), rational.FromInt(2))
	require.ErrorIs(t, err, rational.ErrOverflow)
}
