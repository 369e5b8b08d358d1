package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/avancod/equityengine/internal/model"
	"github.com/avancod/equityengine/internal/section"
)

// A4 portrait geometry, in millimeters.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	margin       = 20.0
	contentWidth = pageWidth - 2*margin

	// brandBandHeight is the dark banner across the top of page one.
	brandBandHeight = 35.0

	// contentTop is where section content starts on page one, below the
	// brand banner. Continuation pages resume higher, at resumeTop.
	contentTop = 50.0
	resumeTop  = 30.0

	// contentBottom is the pagination threshold. The band between it and
	// footerTop stays empty so content never touches the footer.
	contentBottom = pageHeight - 30.0
	footerTop     = pageHeight - 25.0

	rowHeight    = 8.0
	tableHeadH   = 6.0
	tableRowH    = 5.0
	sectionBreak = 30.0

	// cellTruncateAt bounds projection cell text so a wide figure cannot
	// run into the next column.
	cellTruncateAt = 15
)

// projectionColWidths allots the projection table's ten columns across the
// content width. The Year column is narrow, money columns equal, the two
// trailing rate columns slightly tighter.
var projectionColWidths = [...]float64{12, 22, 22, 22, 22, 22, 22, 22, 18, 18}

type rgb struct{ r, g, b int }

var (
	slate     = rgb{30, 41, 59}
	slateFill = rgb{248, 250, 252}
	grayText  = rgb{100, 116, 139}
	blue      = rgb{59, 130, 246}
	divider   = rgb{226, 232, 240}
	white     = rgb{255, 255, 255}
)

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

// cursor is the drawing position. Draw steps take it by value and return the
// advanced position, so page breaks are explicit in the flow of Render
// rather than hidden in shared renderer state.
type cursor struct {
	page int
	y    float64
}

// DocumentRenderer builds the paginated PDF report.
//
// Pagination rules: a section header never starts closer than sectionBreak
// millimeters to the content bottom, a row pair or table row that would
// cross the bottom moves whole to the next page, and the projection table
// redraws its column header after every mid-table break. Every page gets
// the attribution footer.
type DocumentRenderer struct{}

// NewDocumentRenderer returns a PDF renderer.
func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{}
}

// Filename returns the canonical PDF artifact name.
func (d *DocumentRenderer) Filename() string {
	return baseFilename + ".pdf"
}

// MIMEType returns the PDF media type.
func (d *DocumentRenderer) MIMEType() string {
	return "application/pdf"
}

// Render draws the evaluated sections onto A4 pages and returns the
// finished document. Identical models yield byte-identical layout; the page
// count is a pure function of the section content.
func (d *DocumentRenderer) Render(m *model.Report) ([]byte, error) {
	sections, err := section.Evaluate(m)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// Stamp document metadata from the model so identical models produce
	// byte-identical output.
	pdf.SetCreationDate(m.GeneratedAt)
	pdf.SetModificationDate(m.GeneratedAt)
	pdf.SetTitle(productName+" "+productTagline, true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFooterFunc(func() { drawFooter(pdf) })
	pdf.AddPage()

	drawBrandHeader(pdf, m)
	c := cursor{page: 1, y: contentTop}

	for _, s := range sections {
		if s.Content.IsTable() {
			c = drawTableSection(pdf, c, s)
		} else {
			c = drawRowSection(pdf, c, s)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// breakIfNeeded starts a new page when fewer than need millimeters remain
// above the footer reserve.
func breakIfNeeded(pdf *fpdf.Fpdf, c cursor, need float64) cursor {
	if c.y+need <= contentBottom {
		return c
	}
	pdf.AddPage()
	return cursor{page: c.page + 1, y: resumeTop}
}

// drawBrandHeader paints the page-one banner: dark band, accent strip,
// product name and tagline, generation date right-aligned.
func drawBrandHeader(pdf *fpdf.Fpdf, m *model.Report) {
	setFill(pdf, slate)
	pdf.Rect(0, 0, pageWidth, brandBandHeight, "F")
	setFill(pdf, blue)
	pdf.Rect(0, 0, 8, brandBandHeight, "F")

	setText(pdf, white)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(15, 15, productName)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(15, 22, productTagline)

	pdf.SetFont("Helvetica", "", 9)
	stamp := "Generated: " + generatedStamp(m)
	pdf.Text(pageWidth-margin-pdf.GetStringWidth(stamp), 15, stamp)
}

// drawSectionHeader paints the tinted band, the accent-colored title, and
// the divider rule, then advances past the band.
func drawSectionHeader(pdf *fpdf.Fpdf, c cursor, title string, accent section.Accent) cursor {
	setFill(pdf, slateFill)
	pdf.Rect(margin-5, c.y-8, pageWidth-2*(margin-5), 12, "F")

	r, g, b := accent.RGB()
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(margin, c.y, title)

	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.5)
	pdf.Line(margin, c.y+2, pageWidth-margin, c.y+2)

	c.y += 10
	return c
}

// drawRowSection lays label/value rows out in two columns, left to right
// then top to bottom. Page-break checks happen only at the start of a row
// pair so the pair never splits across pages.
func drawRowSection(pdf *fpdf.Fpdf, c cursor, s section.Evaluated) cursor {
	c = breakIfNeeded(pdf, c, sectionBreak)
	c = drawSectionHeader(pdf, c, s.Title, s.Accent)

	colWidth := contentWidth / 2
	rows := s.Content.Rows
	for i, row := range rows {
		col := i % 2
		if col == 0 {
			c = breakIfNeeded(pdf, c, rowHeight)
		}
		x := margin + colWidth*float64(col)

		if i%2 == 0 {
			setFill(pdf, slateFill)
			pdf.Rect(x-2, c.y-3, colWidth-4, rowHeight, "F")
		}

		pdf.SetFont("Helvetica", "", 10)
		setText(pdf, grayText)
		pdf.Text(x, c.y+2, row.Label)

		pdf.SetFont("Helvetica", "B", 10)
		setText(pdf, slate)
		pdf.Text(x+colWidth-10-pdf.GetStringWidth(row.Value), c.y+2, row.Value)

		if col == 1 {
			c.y += rowHeight
		}
	}
	if len(rows)%2 != 0 {
		c.y += rowHeight
	}
	c.y += 5
	return c
}

// drawTableSection renders the projection grid. The column header repeats
// after every mid-table page break so no data row appears without one.
func drawTableSection(pdf *fpdf.Fpdf, c cursor, s section.Evaluated) cursor {
	c = breakIfNeeded(pdf, c, sectionBreak+tableHeadH)
	c = drawSectionHeader(pdf, c, s.Title, s.Accent)

	t := s.Content.Table
	c = drawTableHeader(pdf, c, t.Header)

	for _, row := range t.Rows {
		if c.y+tableRowH > contentBottom {
			pdf.AddPage()
			c = cursor{page: c.page + 1, y: resumeTop}
			c = drawTableHeader(pdf, c, t.Header)
		}

		pdf.SetFont("Helvetica", "", 7)
		setText(pdf, grayText)
		x := margin
		for i, cell := range row {
			pdf.Text(x, c.y, truncateCell(cell))
			x += projectionColWidths[i]
		}
		c.y += tableRowH
	}
	c.y += 10
	return c
}

func drawTableHeader(pdf *fpdf.Fpdf, c cursor, header []string) cursor {
	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, slate)
	x := margin
	for i, name := range header {
		pdf.Text(x, c.y, name)
		x += projectionColWidths[i]
	}
	c.y += tableHeadH
	return c
}

// truncateCell bounds cell text at cellTruncateAt characters, replacing the
// tail with an ellipsis. Projection cells are ASCII so byte slicing is safe.
func truncateCell(s string) string {
	if len(s) <= cellTruncateAt {
		return s
	}
	return s[:12] + "..."
}

// drawFooter paints the per-page attribution band. Registered through
// SetFooterFunc so continuation pages created mid-table get it too.
func drawFooter(pdf *fpdf.Fpdf) {
	setFill(pdf, slateFill)
	pdf.Rect(0, footerTop, pageWidth, pageHeight-footerTop, "F")

	setDraw(pdf, divider)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, footerTop, pageWidth-margin, footerTop)

	x := margin
	pdf.SetFont("Helvetica", "B", 9)
	setText(pdf, slate)
	pdf.Text(x, footerTop+8, "Equity Engine")
	x += pdf.GetStringWidth("Equity Engine") + 2

	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, grayText)
	pdf.Text(x, footerTop+8, "a project of")
	x += pdf.GetStringWidth("a project of") + 2

	pdf.SetFont("Helvetica", "U", 8)
	setText(pdf, blue)
	pdf.Text(x, footerTop+8, "Avancod")
	pdf.LinkString(x, footerTop+4, pdf.GetStringWidth("Avancod"), 6, siteURL)
}
