// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracmat/matrix"
)

var powCmd = &cobra.Command{
	Use:   "pow N",
	Short: "Print A raised to the integer power N (N >= 0)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("exponent %q: %w", args[0], err)
		}
		a, _, err := operands(false)
		if err != nil {
			return err
		}
		res, err := matrix.Power(a, n)
		if err != nil {
			return err
		}
		printMatrix(cmd, res)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(powCmd)
}
