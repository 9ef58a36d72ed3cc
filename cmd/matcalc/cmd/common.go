// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fracmat/matrix"
)

// printMatrix writes m to the command output in the configured format.
func printMatrix(cmd *cobra.Command, m *matrix.Dense) {
	fmt.Fprintln(cmd.OutOrStdout(), renderMatrix(m, appCfg.Output.Format))
}

// binaryCommand builds a command computing op(A, B).
func binaryCommand(use, short string, op func(a, b matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := operands(true)
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}
			logger.Debug("computed", zap.String("op", use))
			printMatrix(cmd, res)

			return nil
		},
	}
}

// unaryCommand builds a command computing op(A).
func unaryCommand(use, short string, op func(m matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := operands(false)
			if err != nil {
				return err
			}
			res, err := op(a)
			if err != nil {
				return err
			}
			logger.Debug("computed", zap.String("op", use))
			printMatrix(cmd, res)

			return nil
		},
	}
}
