// SPDX-License-Identifier: MIT

package rational

import "strconv"

// String renders the canonical form: "p" for integers, "p/q" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// Latex renders the markup form used inside a pmatrix cell:
// "p" for integers, "\frac{p}{q}" otherwise, with the minus sign in front
// of the fraction ("-\frac{1}{2}").
func (r Rational) Latex() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.num, 10)
	}
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}

	return sign + `\frac{` + strconv.FormatInt(abs64(r.num), 10) + "}{" + strconv.FormatInt(r.Den(), 10) + "}"
}
