// Package fracmat is an exact-fraction matrix calculator: rational
// arithmetic, a matrix algebra kernel and a small bracketed expression
// language over two operand matrices A and B.
//
// What is inside?
//
//	rational/    - int64 fractions with overflow-checked arithmetic
//	matrix/      - Matrix interface, row-major Dense, add/sub/mul/scale/power,
//	               transpose, determinant, cofactors, inverse, echelon form, rank
//	expression/  - tokenizer with implicit multiplication, validator, evaluator
//	grid/        - text cell grids into bounded matrices (10x10 by default)
//	cmd/matcalc  - cobra CLI over all of the above
//
// Every value stays exact: no float64 is ever produced. Arithmetic that
// leaves the int64 range reports rational.ErrOverflow instead of wrapping.
//
// Quick example:
//
//	A = |1 2|    B = |0 1|    {A*[4(A-3B)]} = | 4 28|
//	    |3 4|        |1 0|                    |12 52|
//
//	go install github.com/katalvlaran/fracmat/cmd/matcalc@latest
package fracmat
