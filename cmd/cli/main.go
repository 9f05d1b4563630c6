// Package main is the entry point for mme-calc CLI.
package main

import (
	"os"

	"mme-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
