// SPDX-License-Identifier: MIT

package expression

import (
	"github.com/katalvlaran/fracmat/matrix"
	"go.uber.org/zap"
)

// Expression is a validated, multiplication-normalized token stream.
// It is immutable and safe to evaluate concurrently.
type Expression struct {
	src    string
	tokens []Token
	log    *zap.Logger
}

// Compile tokenizes and validates s.
// Errors:
//   - ErrInvalidExpression for characters outside the alphabet or a stream
//     rejected by IsValid.
//   - rational.ErrOverflow for a scalar literal beyond int64.
func Compile(s string, opts ...Option) (*Expression, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s == "" {
		return nil, exprErrorf(opCompile, ErrInvalidExpression)
	}
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, exprErrorf(opCompile, err)
	}
	if !validTokens(tokens) {
		return nil, exprErrorf(opCompile, ErrInvalidExpression)
	}

	return &Expression{src: s, tokens: tokens, log: o.log}, nil
}

// String returns the source text.
func (e *Expression) String() string { return e.src }

// Normalized returns the token stream rendered with inserted '*' signs.
func (e *Expression) Normalized() string { return Render(e.tokens) }

// Tokens returns a copy of the normalized stream.
func (e *Expression) Tokens() []Token {
	return append([]Token(nil), e.tokens...)
}

// Evaluate computes the expression for operands a and b. A bare scalar k
// stands for k·I with the order of a.
func (e *Expression) Evaluate(a, b matrix.Matrix) (*matrix.Dense, error) {
	ev := &evaluator{
		a:      a,
		b:      b,
		tokens: e.Tokens(),
		log:    e.log.With(zap.String("expr", e.src)),
	}
	res, err := ev.run()
	if err != nil {
		return nil, exprErrorf(opEvaluate, err)
	}

	return res, nil
}

// Evaluate compiles s and evaluates it in one call.
func Evaluate(s string, a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	e, err := Compile(s, opts...)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(a, b)
}
