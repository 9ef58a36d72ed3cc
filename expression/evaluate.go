// SPDX-License-Identifier: MIT

package expression

import (
	"fmt"

	"github.com/katalvlaran/fracmat/matrix"
	"go.uber.org/zap"
)

// evaluator owns the working token list and the result-slot table of one
// Evaluate call.
type evaluator struct {
	a, b   matrix.Matrix
	tokens []Token
	slots  []*matrix.Dense
	log    *zap.Logger
}

// run resolves round groups innermost first, then square, then curly, then
// the remaining top-level sequence.
func (ev *evaluator) run() (*matrix.Dense, error) {
	for _, kind := range []Bracket{Round, Square, Curly} {
		for {
			done, err := ev.resolveGroup(kind)
			if err != nil {
				return nil, err
			}
			if done {
				break
			}
		}
	}
	t, err := ev.simple(ev.tokens)
	if err != nil {
		return nil, err
	}
	ev.log.Debug("expression resolved", zap.Int("slots", len(ev.slots)))

	return ev.slots[t.Slot], nil
}

// resolveGroup evaluates the first group of the given kind whose close
// bracket comes first and splices its result reference into the stream.
// It reports done when no group of that kind remains.
func (ev *evaluator) resolveGroup(kind Bracket) (bool, error) {
	closeAt := -1
	for i, t := range ev.tokens {
		if t.Kind == KindClose && t.Bracket == kind {
			closeAt = i
			break
		}
	}
	if closeAt < 0 {
		return true, nil
	}
	openAt := closeAt - 1
	for openAt >= 0 && !(ev.tokens[openAt].Kind == KindOpen && ev.tokens[openAt].Bracket == kind) {
		openAt--
	}
	if openAt < 0 {
		return false, fmt.Errorf("unmatched %s bracket: %w", kind, ErrEvaluation)
	}

	inner := ev.tokens[openAt+1 : closeAt]
	ref, err := ev.simple(inner)
	if err != nil {
		return false, err
	}
	ev.log.Debug("group resolved",
		zap.Stringer("bracket", kind),
		zap.String("group", Render(inner)),
		zap.Int("slot", ref.Slot),
	)
	ev.tokens = splice(ev.tokens, openAt, closeAt+1, ref)

	return false, nil
}

// splice replaces tokens[from:to] with t.
func splice(tokens []Token, from, to int, t Token) []Token {
	out := make([]Token, 0, len(tokens)-(to-from)+1)
	out = append(out, tokens[:from]...)
	out = append(out, t)

	return append(out, tokens[to:]...)
}

// simple evaluates a bracket-free sequence: leading unary sign, then '*'
// left to right, then '+'/'-' left to right. The returned token always
// references a result slot.
func (ev *evaluator) simple(in []Token) (Token, error) {
	if len(in) == 0 {
		return Token{}, fmt.Errorf("empty group: %w", ErrEvaluation)
	}
	seq := append([]Token(nil), in...)

	// Unary sign.
	if seq[0].isSign() {
		if len(seq) < 2 || !seq[1].isOperand() {
			return Token{}, fmt.Errorf("dangling sign: %w", ErrEvaluation)
		}
		if seq[0].Op == '-' {
			m, err := ev.operand(seq[1])
			if err != nil {
				return Token{}, err
			}
			neg, err := matrix.ScaleInt(m, -1)
			if err != nil {
				return Token{}, err
			}
			seq = splice(seq, 0, 2, ev.store(neg))
		} else {
			seq = seq[1:]
		}
	}

	var err error
	if seq, err = ev.reduce(seq, func(t Token) bool { return t.Kind == KindOperator && t.Op == '*' }); err != nil {
		return Token{}, err
	}
	if seq, err = ev.reduce(seq, Token.isSign); err != nil {
		return Token{}, err
	}
	if len(seq) != 1 || !seq[0].isOperand() {
		return Token{}, fmt.Errorf("unreduced sequence %q: %w", Render(seq), ErrEvaluation)
	}
	if seq[0].Kind == KindResult {
		return seq[0], nil
	}

	// Lone operand: materialize a private copy so results never alias inputs.
	m, err := ev.operand(seq[0])
	if err != nil {
		return Token{}, err
	}
	d, ok := m.Clone().(*matrix.Dense)
	if !ok {
		if d, err = matrix.ScaleInt(m, 1); err != nil {
			return Token{}, err
		}
	}

	return ev.store(d), nil
}

// reduce consumes every operator matched by pick, left to right, replacing
// the (left, op, right) triple with a result reference.
func (ev *evaluator) reduce(seq []Token, pick func(Token) bool) ([]Token, error) {
	for i := 0; i < len(seq); i++ {
		if !pick(seq[i]) {
			continue
		}
		if i == 0 || i+1 >= len(seq) || !seq[i-1].isOperand() || !seq[i+1].isOperand() {
			return nil, fmt.Errorf("operator %q without operands: %w", seq[i].Op, ErrEvaluation)
		}
		x, err := ev.operand(seq[i-1])
		if err != nil {
			return nil, err
		}
		y, err := ev.operand(seq[i+1])
		if err != nil {
			return nil, err
		}
		var r *matrix.Dense
		switch seq[i].Op {
		case '*':
			r, err = matrix.Mul(x, y)
		case '+':
			r, err = matrix.Add(x, y)
		default:
			r, err = matrix.Sub(x, y)
		}
		if err != nil {
			return nil, err
		}
		seq = splice(seq, i-1, i+2, ev.store(r))
		i--
	}

	return seq, nil
}

// operand returns the matrix a token denotes.
func (ev *evaluator) operand(t Token) (matrix.Matrix, error) {
	switch t.Kind {
	case KindMatrix:
		m := ev.a
		if t.Var == 'B' {
			m = ev.b
		}
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("operand %c: %w", t.Var, err)
		}
		return m, nil

	case KindResult:
		if t.Slot < 0 || t.Slot >= len(ev.slots) {
			return nil, fmt.Errorf("slot %d: %w", t.Slot, ErrEvaluation)
		}
		return ev.slots[t.Slot], nil

	case KindScalar:
		if err := matrix.ValidateNotNil(ev.a); err != nil {
			return nil, fmt.Errorf("scalar %d needs A: %w", t.Scalar, err)
		}
		I, err := matrix.NewIdentity(ev.a.Rows())
		if err != nil {
			return nil, err
		}
		return matrix.ScaleInt(I, t.Scalar)
	}

	return nil, fmt.Errorf("token %q is not an operand: %w", t.String(), ErrEvaluation)
}

// store appends m to the slot table and returns its reference token.
func (ev *evaluator) store(m *matrix.Dense) Token {
	ev.slots = append(ev.slots, m)

	return Token{Kind: KindResult, Slot: len(ev.slots) - 1, Pos: -1}
}
