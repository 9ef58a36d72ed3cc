// SPDX-License-Identifier: MIT

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracmat/expression"
)

func TestIsValid(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		// Basic forms.
		{"A+B", true},
		{"A++B", false},
		{"(A+B)", true},
		{"{[A]}", true},
		{"[{A}]", false},
		{"A*3B+{[3(2A+4B)(A+2B)]A}+B", true},
		{"", false},

		// Bracket nesting.
		{"{(A)}", true},
		{"[(A)]", true},
		{"((A))", true},
		{"([A])", false},
		{"({A})", false},
		{"{{A}}", false},
		{"[[A]]", false},
		{"(A", false},
		{"A)", false},
		{"(A]", false},
		{"{A}+{B}", true},

		// Operators.
		{"A*", false},
		{"*A", false},
		{"A+", false},
		{"A*B*A", true},
		{"A*-B", false},
		{"AB", false},
		{"-A", true},
		{"+A", true},
		{"(-A+B)", true},
		{"A-(-B)", true},
		{"-(A+B)", true},

		// Bare-scalar sign rule.
		{"2", false},
		{"(2)", false},
		{"12", false},
		{"2A", true},
		{"2+A", false},
		{"A+2", false},
		{"A+2-B", false},
		{"A+2B", true},
		{"A*2+B", true},
		{"-2", false},
		{"-2A", true},
		{"A-2B+3", false},

		// Empty groups pass the rules literally.
		{"()", true},

		// Outside the alphabet.
		{"A+C", false},
		{"A + B", false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, expression.IsValid(tc.in))
		})
	}
}

func TestIsValid_OverflowScalarIsInvalid(t *testing.T) {
	require.False(t, expression.IsValid("99999999999999999999A"))
}
