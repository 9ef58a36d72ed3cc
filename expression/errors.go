// SPDX-License-Identifier: MIT

package expression

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExpression is returned when an expression fails tokenization
	// or the validity rules. Callers must not evaluate such a string.
	ErrInvalidExpression = errors.New("expression: invalid expression")

	// ErrEvaluation signals a structural fault met while evaluating an
	// expression that passed validation (for example an empty group "()").
	ErrEvaluation = errors.New("expression: evaluation failed")
)

// Operation tags used as error prefixes.
const (
	opTokenize = "Tokenize"
	opCompile  = "Compile"
	opEvaluate = "Evaluate"
)

// exprErrorf wraps err with the operation tag.
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// offsetErrorf wraps err with the byte offset in the source string.
func offsetErrorf(pos int, c byte, err error) error {
	return fmt.Errorf("offset %d (%q): %w", pos, c, err)
}
