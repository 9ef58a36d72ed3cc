// SPDX-License-Identifier: MIT

package rational

// Rational is an exact fraction num/den in canonical reduced form.
// The zero value is 0/1. Values are immutable; every operation returns a new one.
type Rational struct {
	num int64 // signed numerator
	den int64 // positive denominator; 0 only in the zero value (read as 1)
}

// New builds num/den in canonical form.
//
// Implementation:
//   - Stage 1: reject den == 0 (ErrDivisionByZero) and MinInt64 operands (ErrOverflow).
//   - Stage 2: move the sign to the numerator when den < 0.
//   - Stage 3: divide both by gcd(|num|, |den|).
//
// Complexity: O(log(min(|num|, |den|))).
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, rationalErrorf(opNew, ErrDivisionByZero)
	}
	if !inRange(num) || !inRange(den) {
		return Rational{}, rationalErrorf(opNew, ErrOverflow)
	}

	return normalize(num, den), nil
}

// normalize assumes den != 0 and both operands in range.
func normalize(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den // safe: MinInt64 excluded
	}
	if num == 0 {
		return Rational{num: 0, den: 1}
	}
	g := gcd(num, den)

	return Rational{num: num / g, den: den / g}
}

// MustNew is New that panics on error. Intended for literals and tests.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1. It panics for math.MinInt64, which lies outside the
// representable range; use New to get an error instead.
func FromInt(n int64) Rational {
	if !inRange(n) {
		panic(rationalErrorf("FromInt", ErrOverflow))
	}

	return Rational{num: n, den: 1}
}

// Zero returns 0.
func Zero() Rational { return Rational{num: 0, den: 1} }

// One returns 1.
func One() Rational { return Rational{num: 1, den: 1} }

// Num returns the numerator of the canonical form.
func (r Rational) Num() int64 { return r.num }

// Den returns the (positive) denominator of the canonical form.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1 // zero value
	}

	return r.den
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool { return r.num < 0 }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.Den() == 1 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and s denote the same number.
// Canonical form makes this a field comparison.
func (r Rational) Equal(s Rational) bool {
	return r.num == s.num && r.Den() == s.Den()
}
