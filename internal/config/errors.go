package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no analysis file is given on the
	// command line.
	ErrNoInput = errors.New("no input specified: provide the path to an analysis JSON file")

	// ErrInvalidFormat is returned when the requested export format is not
	// one of pdf, xlsx, markdown, or all.
	ErrInvalidFormat = errors.New("invalid format: must be pdf, xlsx, markdown, or all")

	// ErrNoOutputDir is returned when the output directory resolves to an
	// empty string.
	ErrNoOutputDir = errors.New("no output directory specified")
)
