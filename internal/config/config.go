package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "equityengine"

	// DefaultFormat is the export format used when none is requested.
	// PDF is the artifact most users hand to lenders and partners.
	DefaultFormat = FormatPDF
)

// Export format names accepted by --format.
const (
	FormatPDF      = "pdf"
	FormatXLSX     = "xlsx"
	FormatMarkdown = "markdown"
	FormatAll      = "all"
)

// Config holds all configuration options for equityengine.
// This struct is populated from CLI flags and the optional config file and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// ModelPath is the path to the analysis JSON file to export.
	ModelPath string

	// Format selects the artifact to produce: pdf, xlsx, markdown, or all.
	Format string

	// OutputDir is the directory artifacts are written to. When empty,
	// Validate rejects the config; the CLI fills in the XDG documents
	// default before validation.
	OutputDir string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .equityengine in the current directory and then in
	// the user's home directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values so the defaults are documented in one place.
func NewConfig() *Config {
	return &Config{
		Format: DefaultFormat,
	}
}

// Formats expands the configured format into the list of concrete formats
// to export. "all" expands to every artifact kind.
func (c *Config) Formats() []string {
	if c.Format == FormatAll {
		return []string{FormatPDF, FormatXLSX, FormatMarkdown}
	}
	return []string{c.Format}
}

// XDGConfigDir returns the XDG config directory for equityengine.
// On Linux: ~/.config/equityengine
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant. This is called
// once after CLI parsing, before any export begins.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return ErrNoInput
	}

	switch c.Format {
	case FormatPDF, FormatXLSX, FormatMarkdown, FormatAll:
	default:
		return ErrInvalidFormat
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	return nil
}
