package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for EquityEngine.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equityengine",
		Short: "Export property investment analyses as report artifacts",
		Long: `EquityEngine renders property investment analyses into shareable reports.

Given an analysis JSON file, it produces a paginated PDF report, a flat
XLSX workbook, or a Markdown document. Every artifact presents the same
sections and figures in the same order.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
