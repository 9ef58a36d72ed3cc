// SPDX-License-Identifier: MIT

package rational

import (
	"strconv"
	"strings"
)

// maxDecimalScale bounds 10^k so the power of ten stays in int64.
const maxDecimalScale = 18

// ParseDecimal converts "[+-]digits[.digits]" into an exact fraction whose
// denominator is a power of ten, then reduces it ("1.25" → 5/4).
//
// Errors:
//   - ErrSyntax   for empty text, stray characters, or a missing digit run.
//   - ErrOverflow when the digits (without the point) exceed int64, or the
//     fractional part is longer than maxDecimalScale.
func ParseDecimal(s string) (Rational, error) {
	sign, body := splitSign(s)
	intPart, fracPart, _ := strings.Cut(body, ".")
	if intPart == "" && fracPart == "" {
		return Rational{}, rationalErrorf(opParseDec, ErrSyntax)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Rational{}, rationalErrorf(opParseDec, ErrSyntax)
	}
	if len(fracPart) > maxDecimalScale {
		return Rational{}, rationalErrorf(opParseDec, ErrOverflow)
	}

	num, err := parseDigits(intPart + fracPart)
	if err != nil {
		return Rational{}, rationalErrorf(opParseDec, err)
	}
	den := int64(1)
	for i := 0; i < len(fracPart); i++ {
		den *= 10 // bounded by maxDecimalScale
	}

	return normalize(sign*num, den), nil
}

// Parse accepts the three cell syntaxes: an integer ("-3"), a decimal
// ("0.75") or a fraction ("p/q", each side an optionally signed integer).
//
// Errors: ErrSyntax, ErrOverflow, ErrDivisionByZero (q == 0).
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if p, q, ok := strings.Cut(s, "/"); ok {
		num, err := parseInt(p)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, err)
		}
		den, err := parseInt(q)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, err)
		}
		r, err := New(num, den)
		if err != nil {
			return Rational{}, rationalErrorf(opParse, err)
		}

		return r, nil
	}

	r, err := ParseDecimal(s) // integers are decimals without a point
	if err != nil {
		return Rational{}, rationalErrorf(opParse, err)
	}

	return r, nil
}

// parseInt parses an optionally signed integer run.
func parseInt(s string) (int64, error) {
	sign, body := splitSign(s)
	if body == "" || !allDigits(body) {
		return 0, ErrSyntax
	}
	v, err := parseDigits(body)
	if err != nil {
		return 0, err
	}

	return sign * v, nil
}

// parseDigits parses a non-empty unsigned digit run (already validated).
func parseDigits(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrOverflow // syntax was validated; the only failure left is range
	}

	return v, nil
}

// splitSign strips one leading '+' or '-' and returns the sign factor.
func splitSign(s string) (int64, string) {
	if s == "" {
		return 1, s
	}
	switch s[0] {
	case '-':
		return -1, s[1:]
	case '+':
		return 1, s[1:]
	}

	return 1, s
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
