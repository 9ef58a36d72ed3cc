// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracmat/expression"
)

var validateCmd = &cobra.Command{
	Use:   "validate EXPR",
	Short: "Check an expression and print its normalized form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := expression.Compile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", e.Normalized())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
