// Package cmd - list command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mme-calc/internal/config"
)

// listCmd enumerates every registered calculator
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories and calculators",
	Long: `Print every calculator grouped by category, with the slugs used
by eval batch files.

Examples:
  mme-calc list`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	reg := newRegistry(config.Get())
	for _, cat := range reg.Categories() {
		fmt.Printf("%s (%s)\n", cat.Name(), cat.Slug())
		for _, spec := range reg.ByCategory(cat) {
			fmt.Printf("  %-28s %s\n", spec.Slug, spec.Name)
		}
		fmt.Println()
	}
	fmt.Printf("%d calculators in %d categories\n", reg.Count(), len(reg.Categories()))
}
