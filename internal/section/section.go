package section

import (
	"errors"

	"github.com/avancod/equityengine/internal/model"
)

// ErrNoResults is returned by Evaluate when the model carries no analysis
// results. The orchestrator rejects such models before rendering starts, so
// hitting this inside a renderer indicates the caller skipped that check.
var ErrNoResults = errors.New("report has no analysis results")

// Accent tags a section with its emphasis color.
//
// Design decision: We use iota-based constants rather than raw color strings
// so renderers dispatch on a tagged variant instead of inspecting style
// values at runtime. The PDF renderer maps accents to RGB; the workbook and
// markdown renderers ignore the distinction and apply uniform emphasis.
type Accent int

const (
	// AccentSlate is the neutral dark accent used for ratio sections.
	AccentSlate Accent = iota

	// AccentBlue marks descriptive property content.
	AccentBlue

	// AccentViolet marks summary and projection content.
	AccentViolet

	// AccentEmerald marks income-oriented content.
	AccentEmerald

	// AccentAmber marks financing and tax-cost content.
	AccentAmber

	// AccentRed marks expense and post-tax content.
	AccentRed
)

// RGB returns the accent's color components for drawing backends.
func (a Accent) RGB() (r, g, b int) {
	switch a {
	case AccentBlue:
		return 59, 130, 246
	case AccentViolet:
		return 139, 92, 246
	case AccentEmerald:
		return 16, 185, 129
	case AccentAmber:
		return 245, 158, 11
	case AccentRed:
		return 239, 68, 68
	default:
		return 30, 41, 59 // slate
	}
}

// String returns the accent name, mostly for test failure messages.
func (a Accent) String() string {
	switch a {
	case AccentSlate:
		return "slate"
	case AccentBlue:
		return "blue"
	case AccentViolet:
		return "violet"
	case AccentEmerald:
		return "emerald"
	case AccentAmber:
		return "amber"
	case AccentRed:
		return "red"
	default:
		return "unknown"
	}
}

// Row is a single label/value pair within a section.
type Row struct {
	// Label is the metric name shown left-aligned.
	Label string

	// Value is the pre-formatted display string shown right-aligned.
	Value string
}

// Table is the row set shape of the long-term projection section: a header
// naming each metric column plus one row of pre-formatted cells per year.
type Table struct {
	// Header holds the column names, rendered bold once per page.
	Header []string

	// Rows holds one entry per selected year, cells pre-formatted.
	Rows [][]string
}

// RowSet is the content produced by a section builder. Exactly one of Rows
// or Table is populated.
type RowSet struct {
	// Rows holds label/value pairs for two-column sections.
	Rows []Row

	// Table holds the wide projection grid, when this is a table section.
	Table *Table
}

// IsTable reports whether the row set carries a wide table.
func (rs RowSet) IsTable() bool { return rs.Table != nil }

// Section is one logical block of the report.
type Section struct {
	// Title is the section heading rendered by every artifact.
	Title string

	// Accent is the emphasis tag for this section.
	Accent Accent

	// Include decides whether the section appears for the given model.
	// It must be a pure function of the model.
	Include func(*model.Report) bool

	// Build produces the section content. It may fail when the model is
	// structurally malformed (e.g. mismatched projection series lengths);
	// builders never panic on missing optional data.
	Build func(*model.Report) (RowSet, error)
}

// Evaluated is a section that passed its inclusion predicate, paired with
// its built content. The slice returned by Evaluate preserves catalog order.
type Evaluated struct {
	// Title is the section heading.
	Title string

	// Accent is the emphasis tag.
	Accent Accent

	// Content is the built row set.
	Content RowSet
}

// Evaluate filters the catalog against the model and builds every included
// section. The result is deterministic and order-preserving; all renderers
// consume it identically. The first builder error aborts evaluation so a
// malformed model never yields a partial section list.
func Evaluate(r *model.Report) ([]Evaluated, error) {
	if r.Results == nil {
		return nil, ErrNoResults
	}

	catalog := Catalog()
	out := make([]Evaluated, 0, len(catalog))

	for _, s := range catalog {
		if !s.Include(r) {
			continue
		}
		content, err := s.Build(r)
		if err != nil {
			return nil, err
		}
		out = append(out, Evaluated{
			Title:   s.Title,
			Accent:  s.Accent,
			Content: content,
		})
	}
	return out, nil
}
