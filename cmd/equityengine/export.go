package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avancod/equityengine/internal/config"
	"github.com/avancod/equityengine/internal/export"
	"github.com/avancod/equityengine/internal/model"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <analysis.json>",
		Short: "Render a property analysis into report artifacts",
		Long: `Export renders a property investment analysis into shareable artifacts.

The input is the analysis JSON file produced by the EquityEngine analyzer.
Artifacts are written atomically into the output directory; a failed render
or save leaves no partial file behind.

Examples:
  # Export the PDF report (default format)
  equityengine export analysis.json

  # Export the XLSX workbook
  equityengine export --format xlsx analysis.json

  # Export every artifact at once
  equityengine export --format all analysis.json

  # Choose the output directory
  equityengine export --output-dir ./reports analysis.json

Configuration file (.equityengine) example:
  output_dir: ~/Documents/reports
  format: all
  verbose: true`,
		Args: cobra.ExactArgs(1),
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Export format: pdf, xlsx, markdown, or all")
	cmd.Flags().StringP("output-dir", "o", "",
		"Output directory for artifacts (default: documents directory)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .equityengine in current, home, or config directory)")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExport(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags take precedence over file values, which take
// precedence over built-in defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.ModelPath = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if file.OutputDir != "" {
			cfg.OutputDir = file.OutputDir
		}
		if file.Format != "" {
			cfg.Format = file.Format
		}
		if file.Verbose {
			cfg.Verbose = true
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override file values only when the user set them.
	if cmd.Flags().Changed("format") {
		cfg.Format, err = cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = export.DefaultOutputDir()
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runExport loads the model and runs one export per requested format.
// Formats are independent of each other, so they run concurrently; the
// first failure cancels the rest and is reported to the user.
func runExport(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	report, err := model.LoadReport(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
	}

	saver, err := export.NewFileSaver(cfg.OutputDir)
	if err != nil {
		return err
	}
	orch := export.NewOrchestrator(saver, logger)

	logger.Info("starting export",
		"input", cfg.ModelPath,
		"formats", cfg.Formats(),
		"outputDir", cfg.OutputDir,
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range cfg.Formats() {
		format := format
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			switch format {
			case config.FormatPDF:
				return orch.ExportDocument(report)
			case config.FormatXLSX:
				return orch.ExportWorkbook(report)
			case config.FormatMarkdown:
				return orch.ExportMarkdown(report)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Exported %d artifact(s) to %s\n", len(cfg.Formats()), cfg.OutputDir)
	return nil
}
