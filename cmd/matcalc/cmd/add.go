// SPDX-License-Identifier: MIT

package cmd

import "github.com/katalvlaran/fracmat/matrix"

var addCmd = binaryCommand("add", "Print A + B", matrix.Add)

func init() {
	rootCmd.AddCommand(addCmd)
}
