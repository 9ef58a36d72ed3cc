// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracmat/matrix"
)

var detCmd = &cobra.Command{
	Use:   "det",
	Short: "Print the determinant of A",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := operands(false)
		if err != nil {
			return err
		}
		d, err := matrix.Determinant(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderScalar(d, appCfg.Output.Format))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(detCmd)
}
