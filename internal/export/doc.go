// Package export coordinates rendering and saving of report artifacts.
//
// The Orchestrator validates the model, invokes one renderer per requested
// format, and hands each finished artifact to a Saver. Rendering happens
// entirely in memory: a render failure produces no file at all, and a save
// failure never leaves a partially written artifact behind because the file
// saver writes to a temporary name and renames into place.
//
// Errors are classified by stage. A missing-results model fails with
// ErrMissingResults before any renderer runs; renderer failures wrap into
// RenderError and saver failures into SaveError, so callers can tell a bad
// model from a bad disk.
package export
