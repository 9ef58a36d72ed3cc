// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracmat/matrix"
	"github.com/katalvlaran/fracmat/rational"
)

var scaleCmd = &cobra.Command{
	Use:   "scale K",
	Short: "Print K·A for an integer, decimal or p/q scalar K",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := rational.Parse(args[0])
		if err != nil {
			return fmt.Errorf("scalar %q: %w", args[0], err)
		}
		a, _, err := operands(false)
		if err != nil {
			return err
		}
		res, err := matrix.Scale(a, k)
		if err != nil {
			return err
		}
		printMatrix(cmd, res)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}
