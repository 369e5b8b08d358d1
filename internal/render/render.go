package render

import (
	"github.com/avancod/equityengine/internal/model"
)

// Brand identity shared by every artifact.
const (
	productName    = "EquityEngine"
	productTagline = "Property Investment Analysis Report"
	attribution    = "Equity Engine - a project of Avancod"
	siteURL        = "https://www.avancod.com"

	// baseFilename is the artifact file name stem; each renderer appends
	// its own extension.
	baseFilename = "EquityEngine_Property_Analysis_Report"
)

// Renderer produces one export artifact from a report model.
//
// Design decision: Renderers return the finished artifact as a byte slice
// instead of writing to an io.Writer. Saving is a separate concern owned by
// the export orchestrator, and a failed render must never leave a partial
// file on disk.
type Renderer interface {
	// Render builds the complete artifact in memory.
	Render(r *model.Report) ([]byte, error)

	// Filename returns the canonical artifact file name.
	Filename() string

	// MIMEType returns the artifact's media type.
	MIMEType() string
}

// interface guards
var (
	_ Renderer = (*DocumentRenderer)(nil)
	_ Renderer = (*WorkbookRenderer)(nil)
	_ Renderer = (*MarkdownRenderer)(nil)
)

// generatedStamp formats the generation timestamp for artifact headers.
func generatedStamp(m *model.Report) string {
	return m.GeneratedAt.Format("January 2, 2006")
}
