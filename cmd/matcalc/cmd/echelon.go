// SPDX-License-Identifier: MIT

package cmd

import "github.com/katalvlaran/fracmat/matrix"

var echelonCmd = unaryCommand("echelon", "Print a row-echelon form of A", matrix.RowEchelonForm)

func init() {
	rootCmd.AddCommand(echelonCmd)
}
