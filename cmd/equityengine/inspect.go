package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avancod/equityengine/internal/model"
	"github.com/avancod/equityengine/internal/render"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <analysis.json>",
		Short: "Print a plain-text summary of a property analysis",
		Long: `Inspect prints the report sections as plain text for a quick look at an
analysis file without producing any artifact.

Example:
  equityengine inspect analysis.json`,
		Args: cobra.ExactArgs(1),
		RunE: runInspectCmd,
	}
}

// runInspectCmd executes the inspect command.
func runInspectCmd(cmd *cobra.Command, args []string) error {
	report, err := model.LoadReport(args[0])
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
	}

	w := render.NewTextWriter(cmd.OutOrStdout())
	if _, err := w.Write(report); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
