// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracmat/matrix"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the rank of A",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := operands(false)
		if err != nil {
			return err
		}
		r, err := matrix.Rank(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
}
