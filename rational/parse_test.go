package rational_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/rational"
)

func TestParseDecimal(t *testing.T) {
	for _, tc := range []struct {
		in   string
		n, d int64
	}{
		{"1.25", 5, 4},
		{"-0.5", -1, 2},
		{"+3", 3, 1},
		{".75", 3, 4},
		{"2.", 2, 1},
		{"007.10", 71, 10},
		{"-0", 0, 1},
	} {
		t.Run(tc.in, func(t *testing.T) {
			r, err := rational.ParseDecimal(tc.in)
			require.NoError(t, err)
			require.True(t, r.Equal(R(t, tc.n, tc.d)), "got %v", r)
		})
	}
}

func TestParseDecimal_Errors(t *testing.T) {
	for _, in := range []string{"", "-", ".", "1.2.3", "1e5", "abc", "+-1", "1/2"} {
		_, err := rational.ParseDecimal(in)
		require.ErrorIs(t, err, rational.ErrSyntax, "input %q", in)
	}

	_, err := rational.ParseDecimal("99999999999999999999")
	require.ErrorIs(t, err, rational.ErrOverflow)

	_, err = rational.ParseDecimal("0.0000000000000000001")
	require.ErrorIs(t, err, rational.ErrOverflow)
}

func TestParse_AllSyntaxes(t *testing.T) {
	for _, tc := range []struct {
		in   string
		n, d int64
	}{
		{"12", 12, 1},
		{" -7 ", -7, 1},
		{"0.2", 1, 5},
		{"6/8", 3, 4},
		{"3/-4", -3, 4},
		{"-10/-4", 5, 2},
	} {
		t.Run(tc.in, func(t *testing.T) {
			r, err := rational.Parse(tc.in)
			require.NoError(t, err)
			require.True(t, r.Equal(R(t, tc.n, tc.d)), "got %v", r)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := rational.Parse("1/0")
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	for _, in := range []string{"1/", "/2", "1/2/3", "a/b", "1.5/2", "x"} {
		_, err = rational.Parse(in)
		require.ErrorIs(t, err, rational.ErrSyntax, "input %q", in)
	}
}
