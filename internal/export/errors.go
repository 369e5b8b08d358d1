package export

import (
	"errors"
	"fmt"
)

// ErrMissingResults is returned when the model carries no analysis results.
// The check runs before any renderer so no artifact work starts for a model
// that cannot produce one.
var ErrMissingResults = errors.New("report has no analysis results")

// RenderError reports a failure while building an artifact in memory.
// No file was created.
type RenderError struct {
	// Format names the artifact kind that failed, e.g. "pdf".
	Format string

	// Err is the underlying renderer error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s artifact: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// SaveError reports a failure while persisting a finished artifact.
type SaveError struct {
	// Format names the artifact kind that failed to save.
	Format string

	// Filename is the artifact name the saver was given.
	Filename string

	// Err is the underlying saver error.
	Err error
}

// Error implements the error interface.
func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s artifact %q: %v", e.Format, e.Filename, e.Err)
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *SaveError) Unwrap() error {
	return e.Err
}
