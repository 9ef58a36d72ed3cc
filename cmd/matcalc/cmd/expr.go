// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracmat/expression"
)

var exprCmd = &cobra.Command{
	Use:   "expr EXPR",
	Short: "Evaluate an expression over A and B",
	Long: `Evaluate an expression over A and B.

Scalars multiply implicitly ("2A" is 2*A) and stand for scalar×I when
used alone as an operand. Round brackets nest freely, square brackets
only at top level or inside curly ones, curly only at top level.

Example:
  matcalc expr "{A*[4(A-3B)]}" --a "1,2;3,4" --b "0,1;1,0"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := expression.Compile(args[0], expression.WithLogger(logger))
		if err != nil {
			return err
		}
		a, b, err := operands(false)
		if err != nil {
			return err
		}
		res, err := e.Evaluate(a, b)
		if err != nil {
			return err
		}
		printMatrix(cmd, res)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exprCmd)
}
