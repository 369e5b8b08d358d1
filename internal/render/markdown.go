package render

import (
	"bytes"

	"github.com/nao1215/markdown"

	"github.com/avancod/equityengine/internal/model"
	"github.com/avancod/equityengine/internal/section"
)

// MarkdownRenderer outputs the report as GitHub Flavored Markdown. This
// format is designed for documentation and sharing in repositories.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and horizontal rules
// 3. Automatic cell escaping in tables
type MarkdownRenderer struct{}

// NewMarkdownRenderer returns a markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Filename returns the canonical markdown artifact name.
func (r *MarkdownRenderer) Filename() string {
	return baseFilename + ".md"
}

// MIMEType returns the markdown media type.
func (r *MarkdownRenderer) MIMEType() string {
	return "text/markdown"
}

// Render writes every evaluated section as an H2 with a table underneath.
// Label/value sections become two-column Metric/Value tables; the projection
// section keeps its own wide header.
func (r *MarkdownRenderer) Render(m *model.Report) ([]byte, error) {
	sections, err := section.Evaluate(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1(productName + " " + productTagline)
	md.PlainText("")
	md.PlainTextf("Generated: %s", generatedStamp(m))
	md.PlainText("")

	for _, s := range sections {
		md.H2(s.Title)
		md.PlainText("")

		if t := s.Content.Table; t != nil {
			md.Table(markdown.TableSet{Header: t.Header, Rows: t.Rows})
		} else {
			rows := make([][]string, len(s.Content.Rows))
			for i, row := range s.Content.Rows {
				rows[i] = []string{row.Label, row.Value}
			}
			md.Table(markdown.TableSet{
				Header: []string{"Metric", "Value"},
				Rows:   rows,
			})
		}
		md.PlainText("")
	}

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [%s](%s)*", productName, siteURL)

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
