// SPDX-License-Identifier: MIT

package cmd

import "github.com/katalvlaran/fracmat/matrix"

var subCmd = binaryCommand("sub", "Print A - B", matrix.Sub)

func init() {
	rootCmd.AddCommand(subCmd)
}
