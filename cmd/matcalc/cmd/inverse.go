// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fracmat/matrix"
)

var inverseCmd = &cobra.Command{
	Use:   "inverse",
	Short: "Print the inverse of A",
	Long: `Print the inverse of the square matrix A.

A singular matrix has no inverse; this is reported on stdout and is not
an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := operands(false)
		if err != nil {
			return err
		}
		inv, ok, err := matrix.Inverse(a)
		if err != nil {
			return err
		}
		if !ok {
			logger.Debug("singular matrix")
			fmt.Fprintln(cmd.OutOrStdout(), "singular matrix: no inverse exists")
			return nil
		}
		logger.Debug("inverse computed", zap.Int("order", inv.Rows()))
		printMatrix(cmd, inv)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inverseCmd)
}
