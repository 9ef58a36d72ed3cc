// SPDX-License-Identifier: MIT

// Package rational provides an exact fraction type with overflow detection.
//
// What & Why:
//
//	Rational is an immutable numerator/denominator pair over int64, kept in
//	canonical form (denominator > 0, gcd(|num|, den) == 1) after every
//	construction. It is the number type of the matrix and expression packages,
//	so that determinants, inverses and eliminations stay exact.
//
// Numeric policy:
//
//	The representable range is [-MaxInt64, MaxInt64]; MinInt64 is excluded so
//	that negation and absolute value can never wrap. Every product and sum is
//	checked before it is stored; an out-of-range intermediate fails with
//	ErrOverflow instead of wrapping silently. Division by a zero value fails
//	with ErrDivisionByZero.
//
// Complexity:
//
//	All arithmetic is O(log(max(|num|, den))) for the gcd reduction.
//
// AI-Hints:
//   - The zero value of Rational is 0 and is ready to use.
//   - Compare with Equal; the struct is comparable but Equal is the contract.
//   - Use Parse for cell text (integer, decimal, p/q); ParseDecimal for decimals only.
package rational
