package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avancod/equityengine/internal/model"
	"github.com/avancod/equityengine/internal/section"
)

// sheetName is the single worksheet every workbook export carries.
const sheetName = "Property Analysis"

// WorkbookRenderer builds the XLSX artifact: one flat worksheet with the
// same sections, order, and display strings as the PDF.
//
// Design decision: Cells hold the pre-formatted strings from the section
// catalog, not raw numbers. Styling is advisory emphasis only, so a reader
// that ignores styles still recovers every figure, and the format package's
// inverse parsers can round-trip any value cell.
type WorkbookRenderer struct{}

// NewWorkbookRenderer returns an XLSX renderer.
func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// Filename returns the canonical XLSX artifact name.
func (w *WorkbookRenderer) Filename() string {
	return baseFilename + ".xlsx"
}

// MIMEType returns the XLSX media type.
func (w *WorkbookRenderer) MIMEType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// sheetWriter appends string rows to a worksheet top to bottom. The first
// failure sticks and turns later calls into no-ops, so Render checks the
// error once at the end instead of after every row.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

// write appends one row; a non-zero style is applied across its cells.
// Calling it with no cells emits a blank separator row.
func (sw *sheetWriter) write(style int, cells ...string) {
	if sw.err != nil {
		return
	}
	defer func() { sw.row++ }()
	if len(cells) == 0 {
		return
	}

	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	start, err := excelize.CoordinatesToCellName(1, sw.row)
	if err != nil {
		sw.err = err
		return
	}
	if err := sw.f.SetSheetRow(sheetName, start, &vals); err != nil {
		sw.err = err
		return
	}
	if style != 0 {
		end, err := excelize.CoordinatesToCellName(len(cells), sw.row)
		if err != nil {
			sw.err = err
			return
		}
		sw.err = sw.f.SetCellStyle(sheetName, start, end, style)
	}
}

// Render lays the evaluated sections out as rows and returns the serialized
// workbook.
func (w *WorkbookRenderer) Render(m *model.Report) ([]byte, error) {
	sections, err := section.Evaluate(m)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("name worksheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("build title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E3F2FD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("build header style: %w", err)
	}

	sw := &sheetWriter{f: f, row: 1}
	sw.write(titleStyle, "EQUITY ENGINE - PROPERTY INVESTMENT ANALYSIS REPORT")
	sw.write(0, "Generated on:", generatedStamp(m))
	sw.write(0)

	for _, s := range sections {
		sw.write(headerStyle, s.Title)
		if t := s.Content.Table; t != nil {
			sw.write(headerStyle, t.Header...)
			for _, row := range t.Rows {
				sw.write(0, row...)
			}
		} else {
			for _, row := range s.Content.Rows {
				sw.write(0, row.Label+":", row.Value)
			}
		}
		sw.write(0)
	}

	sw.write(0, attribution)
	sw.write(0, "Website: "+siteURL)
	if sw.err != nil {
		return nil, fmt.Errorf("write worksheet rows: %w", sw.err)
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 30}, {"B", 25}, {"C", 20}, {"D", 20}, {"E", 20},
		{"F", 20}, {"G", 15}, {"H", 15}, {"I", 15}, {"J", 15},
	}
	for _, cw := range widths {
		if err := f.SetColWidth(sheetName, cw.col, cw.col, cw.width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
