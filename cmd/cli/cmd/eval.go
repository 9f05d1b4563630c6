// Package cmd - eval command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mme-calc/adapters/batch"
	"mme-calc/core/output"
	"mme-calc/internal/config"
	"mme-calc/internal/logging"
)

// evalCmd runs an HCL batch calculation file
var evalCmd = &cobra.Command{
	Use:   "eval <file>",
	Short: "Evaluate an HCL batch calculation file",
	Long: `Parse a batch file of calculation blocks and evaluate each one in
file order. The run aborts on the first invalid input or unknown
calculator.

Examples:
  mme-calc eval calculations.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	fmtr := output.NewFormatter(cfg.Output.Precision)
	reg := newRegistry(cfg)

	logging.Info("evaluating batch file")
	runner := batch.NewRunner(reg, fmtr, os.Stdout)
	return runner.RunFile(args[0])
}
