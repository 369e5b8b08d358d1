package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Saver persists a finished artifact.
//
// Design decision: We use an interface so the orchestrator can be tested
// without touching the filesystem, and so artifacts could later be handed
// to other destinations (HTTP response, object storage) with the same API.
type Saver interface {
	// Save persists the artifact bytes under the given file name.
	// The MIME type is advisory; the file saver ignores it.
	Save(data []byte, filename, mimeType string) error
}

// DefaultOutputDir returns the directory artifacts land in when the user
// gives none: the XDG documents directory under an EquityEngine folder, or
// the current directory when the platform reports no documents location.
func DefaultOutputDir() string {
	if xdg.UserDirs.Documents == "" {
		return "."
	}
	return filepath.Join(xdg.UserDirs.Documents, "EquityEngine")
}

// FileSaver writes artifacts into a single output directory.
//
// Writes are atomic: the artifact goes to a temporary file first and is
// renamed into place, so a crash or full disk never leaves a truncated
// artifact under the final name.
type FileSaver struct {
	dir string
}

// NewFileSaver creates a FileSaver targeting dir, creating it if needed.
func NewFileSaver(dir string) (*FileSaver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FileSaver{dir: dir}, nil
}

// Dir returns the output directory.
func (s *FileSaver) Dir() string {
	return s.dir
}

// Save writes the artifact atomically under s.dir.
func (s *FileSaver) Save(data []byte, filename, _ string) error {
	tmp, err := os.CreateTemp(s.dir, filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close artifact: %w", err)
	}

	final := filepath.Join(s.dir, filename)
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("move artifact into place: %w", err)
	}
	return nil
}
