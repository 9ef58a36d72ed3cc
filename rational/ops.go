// SPDX-License-Identifier: MIT
// Package rational: arithmetic.
//
// Every operation checks each intermediate product/sum through the checked
// primitives in arith.go and only then reduces; overflow is never clamped.

package rational

// Add returns r + s.
//
// Implementation:
//   - Stage 1: cross products a = r.num*s.den, b = s.num*r.den (checked).
//   - Stage 2: numerator a+b and denominator r.den*s.den (checked).
//   - Stage 3: reduce.
//
// Errors: ErrOverflow.
// Complexity: O(1) + gcd.
func (r Rational) Add(s Rational) (Rational, error) {
	num, den, err := crossSum(r, s, false)
	if err != nil {
		return Rational{}, rationalErrorf(opAdd, err)
	}

	return normalize(num, den), nil
}

// Sub returns r - s. Errors: ErrOverflow.
func (r Rational) Sub(s Rational) (Rational, error) {
	num, den, err := crossSum(r, s, true)
	if err != nil {
		return Rational{}, rationalErrorf(opSub, err)
	}

	return normalize(num, den), nil
}

// crossSum computes the unreduced numerator and denominator of r ± s.
func crossSum(r, s Rational, negate bool) (int64, int64, error) {
	a, err := mulExact(r.num, s.Den())
	if err != nil {
		return 0, 0, err
	}
	b, err := mulExact(s.num, r.Den())
	if err != nil {
		return 0, 0, err
	}
	den, err := mulExact(r.Den(), s.Den())
	if err != nil {
		return 0, 0, err
	}
	var num int64
	if negate {
		num, err = subExact(a, b)
	} else {
		num, err = addExact(a, b)
	}
	if err != nil {
		return 0, 0, err
	}

	return num, den, nil
}

// Mul returns r * s. Errors: ErrOverflow.
func (r Rational) Mul(s Rational) (Rational, error) {
	num, err := mulExact(r.num, s.num)
	if err != nil {
		return Rational{}, rationalErrorf(opMul, err)
	}
	den, err := mulExact(r.Den(), s.Den())
	if err != nil {
		return Rational{}, rationalErrorf(opMul, err)
	}

	return normalize(num, den), nil
}

// Div returns r / s.
// Errors: ErrDivisionByZero when s == 0, ErrOverflow.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, rationalErrorf(opDiv, ErrDivisionByZero)
	}
	inv, err := s.Reciprocal()
	if err != nil {
		return Rational{}, rationalErrorf(opDiv, err)
	}
	q, err := r.Mul(inv)
	if err != nil {
		return Rational{}, rationalErrorf(opDiv, err)
	}

	return q, nil
}

// Reciprocal returns 1 / r. Errors: ErrDivisionByZero when r == 0.
func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, rationalErrorf(opReciprocal, ErrDivisionByZero)
	}

	return normalize(r.Den(), r.num), nil // already coprime; normalize only fixes the sign
}

// Neg returns -r.
// Errors: ErrOverflow, unreachable for values built by this package.
func (r Rational) Neg() (Rational, error) {
	if !inRange(r.num) {
		return Rational{}, rationalErrorf(opNeg, ErrOverflow)
	}

	return Rational{num: -r.num, den: r.Den()}, nil
}

// Product returns the n-ary product of xs (1 for no operands).
// Evaluation is left to right; the first overflow aborts.
func Product(xs ...Rational) (Rational, error) {
	acc := One()
	var err error
	for _, x := range xs {
		if acc, err = acc.Mul(x); err != nil {
			return Rational{}, err
		}
	}

	return acc, nil
}

// Sum returns the n-ary sum of xs (0 for no operands).
func Sum(xs ...Rational) (Rational, error) {
	acc := Zero()
	var err error
	for _, x := range xs {
		if acc, err = acc.Add(x); err != nil {
			return Rational{}, err
		}
	}

	return acc, nil
}
