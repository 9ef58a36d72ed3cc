// SPDX-License-Identifier: MIT

package cmd

import "github.com/katalvlaran/fracmat/matrix"

var mulCmd = binaryCommand("mul", "Print A × B", matrix.Mul)

func init() {
	rootCmd.AddCommand(mulCmd)
}
