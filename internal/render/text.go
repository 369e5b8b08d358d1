package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/avancod/equityengine/internal/model"
	"github.com/avancod/equityengine/internal/section"
)

// TextWriter outputs a human-readable text summary of the report.
// This format is designed for terminal display: banner header, ruled
// sections, and right-aligned figures.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write outputs the full report summary.
// Returns the number of bytes written and any error encountered.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	sections, err := section.Evaluate(report)
	if err != nil {
		return 0, err
	}

	var sb strings.Builder
	w.writeHeader(&sb, report)
	for _, s := range sections {
		w.writeSection(&sb, s)
	}
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the banner with the generation date.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("               EQUITYENGINE PROPERTY INVESTMENT ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedStamp(report)))
}

// writeSection writes one ruled section. Label/value rows align the values
// in a right-hand column; the projection table prints as a fixed-width grid.
func (w *TextWriter) writeSection(sb *strings.Builder, s section.Evaluated) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(s.Title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if t := s.Content.Table; t != nil {
		w.writeGrid(sb, t)
	} else {
		for _, row := range s.Content.Rows {
			sb.WriteString(fmt.Sprintf("  %-36s %15s\n", row.Label, row.Value))
		}
	}
	sb.WriteString("\n")
}

// writeGrid prints the projection table with the year column narrow and
// every metric column padded to a uniform width.
func (w *TextWriter) writeGrid(sb *strings.Builder, t *section.Table) {
	writeRow := func(cells []string) {
		sb.WriteString(" ")
		for i, cell := range cells {
			if i == 0 {
				sb.WriteString(fmt.Sprintf(" %-5s", cell))
				continue
			}
			sb.WriteString(fmt.Sprintf(" %12s", cell))
		}
		sb.WriteString("\n")
	}

	writeRow(t.Header)
	for _, row := range t.Rows {
		writeRow(row)
	}
}

// writeFooter writes the attribution banner.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(attribution)
	sb.WriteString("\n")
	sb.WriteString(siteURL)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
