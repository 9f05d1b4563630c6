// Package cmd provides the CLI commands for mme-calc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mme-calc/core/calc"
	"mme-calc/core/output"
	"mme-calc/core/shell"
	"mme-calc/formulas"
	"mme-calc/internal/config"
	"mme-calc/internal/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command; running it with no subcommand
// launches the interactive menu shell
var rootCmd = &cobra.Command{
	Use:   "mme-calc",
	Short: "Metallurgical and materials engineering calculators",
	Long: `mme-calc is a menu-driven calculator suite for metallurgical and
materials engineering: mechanical properties, heat transfer, phase
transformations, corrosion, casting, crystallography, composites, and
stress-strain analysis.

Run with no arguments for the interactive menu. Input may also be
redirected for scripted sessions, or supplied as an HCL batch file via
the eval command.

Examples:
  mme-calc
  mme-calc < session.txt
  mme-calc list
  mme-calc eval calculations.hcl`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mme-calc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	interactive := stdinIsTerminal()

	styles := shell.DefaultStyles(noColor || cfg.Output.NoColor || !interactive)
	fmtr := output.NewFormatter(cfg.Output.Precision)
	reg := newRegistry(cfg)

	s := shell.New(os.Stdin, os.Stdout, reg, fmtr, styles, interactive)
	return s.Run()
}

func newRegistry(cfg *config.Config) *calc.Registry {
	return formulas.NewRegistry(formulas.Options{
		FoSThreshold: cfg.Safety.FoSThreshold,
	})
}

// stdinIsTerminal reports whether stdin is a character device; a pipe
// or file means scripted input
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mme-calc version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
