// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fracmat/internal/config"
	"github.com/katalvlaran/fracmat/internal/logging"
)

var (
	// Global flags
	cfgFile   string
	inputFile string
	aText     string
	bText     string
	format    string
	verbose   bool

	// Loaded in PersistentPreRunE
	appCfg *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "Exact rational matrix calculator",
	Long: `matcalc computes with matrices of exact fractions.

Operands come from --a/--b inline grids ("1,2;3,4", cells may be
integers, decimals or p/q fractions) or from a YAML --input document
with "a" and "b" cell grids. Grids are limited to 10x10 by default.

Expressions combine A, B and integer scalars with + - * and the
brackets ( ) [ ] { }, e.g. "A*3B+{[3(2A+4B)(A+2B)]A}+B".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			appCfg, err = config.Load(cfgFile)
		} else {
			appCfg, err = config.LoadFromEnv()
		}
		if err != nil {
			return err
		}
		if format != "" {
			appCfg.Output.Format = format
		}
		if err = appCfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(appCfg.Log.Level, verbose)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("command", cmd.Name()),
			zap.Int("max_rows", appCfg.Grid.MaxRows),
			zap.Int("max_cols", appCfg.Grid.MaxCols),
			zap.String("format", appCfg.Output.Format),
		)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command and reports a classified message on failure.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(describe(err), err)
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/matcalc.toml or $"+config.EnvPath+")")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "YAML document with 'a' and 'b' cell grids")
	rootCmd.PersistentFlags().StringVar(&aText, "a", "", `matrix A as "1,2;3,4"`)
	rootCmd.PersistentFlags().StringVar(&bText, "b", "", `matrix B as "1,2;3,4"`)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: plain, latex or braces")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug) logging")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "matcalc: %s: %v\n", msg, err)
}
