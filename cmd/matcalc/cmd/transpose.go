// SPDX-License-Identifier: MIT

package cmd

import "github.com/katalvlaran/fracmat/matrix"

var transposeCmd = unaryCommand("transpose", "Print the transpose of A", matrix.Transpose)

func init() {
	rootCmd.AddCommand(transposeCmd)
}
