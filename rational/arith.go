// SPDX-License-Identifier: MIT
// Package rational: checked int64 primitives.
//
// Purpose:
//   - Provide the only place where raw int64 arithmetic happens.
//   - Detect overflow BEFORE a wrapped value can escape into a reduction.
//
// Policy:
//   - math.MinInt64 is treated as out of range everywhere, so that -x and |x|
//     of any accepted value are themselves representable.

package rational

import "math"

// inRange reports whether v lies in the representable range [-MaxInt64, MaxInt64].
func inRange(v int64) bool { return v != math.MinInt64 }

// mulExact returns a*b or ErrOverflow.
// Complexity: O(1).
func mulExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil // short-circuit; also avoids the division check below
	}
	c := a * b
	// A wrapped product never divides back to its operand.
	if c/b != a || !inRange(c) {
		return 0, ErrOverflow
	}

	return c, nil
}

// addExact returns a+b or ErrOverflow.
// Complexity: O(1).
func addExact(a, b int64) (int64, error) {
	c := a + b
	// Overflow iff both operands share a sign that the result does not.
	if (a^c)&(b^c) < 0 || !inRange(c) {
		return 0, ErrOverflow
	}

	return c, nil
}

// subExact returns a-b or ErrOverflow.
func subExact(a, b int64) (int64, error) {
	if !inRange(b) {
		return 0, ErrOverflow
	}

	return addExact(a, -b)
}

// abs64 returns |v|; v must be in range.
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// gcd returns the greatest common divisor of |a| and |b| (Euclid).
// gcd(0, 0) == 0; callers never reduce by it in that case.
func gcd(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
