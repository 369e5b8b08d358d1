package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSaverSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	saver, err := NewFileSaver(dir)
	if err != nil {
		t.Fatalf("NewFileSaver() error: %v", err)
	}

	content := []byte("artifact body")
	if err := saver.Save(content, "report.md", "text/markdown"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "report.md"))
	if err != nil {
		t.Fatalf("read saved artifact: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("saved content = %q, want %q", got, content)
	}

	// The temporary file must be gone after the rename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir holds %d entries, want only the artifact", len(entries))
	}
}

func TestFileSaverOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	saver, err := NewFileSaver(dir)
	if err != nil {
		t.Fatalf("NewFileSaver() error: %v", err)
	}

	if err := saver.Save([]byte("first"), "report.md", "text/markdown"); err != nil {
		t.Fatal(err)
	}
	if err := saver.Save([]byte("second"), "report.md", "text/markdown"); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "report.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content after overwrite = %q, want %q", got, "second")
	}
}

func TestNewFileSaverCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	saver, err := NewFileSaver(dir)
	if err != nil {
		t.Fatalf("NewFileSaver() error: %v", err)
	}
	if saver.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", saver.Dir(), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}
