// SPDX-License-Identifier: MIT

// Command matcalc is an exact rational matrix calculator.
package main

import (
	"os"

	"github.com/katalvlaran/fracmat/cmd/matcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
