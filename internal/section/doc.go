// Package section defines the report's section catalog: the ordered list of
// logical content blocks shared by every renderer.
//
// Each section carries a title, an accent tag, an inclusion predicate over
// the report model, and a builder that produces label/value rows (or, for
// the long-term projection section, a table). Evaluating the catalog against
// a model yields a deterministic filtered section list; the PDF, workbook,
// markdown, and text renderers all consume that same list, which is how the
// artifacts stay in agreement section for section and figure for figure.
//
// Design decision: Builders produce only pre-formatted display strings via
// the format package. Layout concerns (column widths, page breaks, cell
// styling) belong exclusively to renderers, keeping the catalog
// renderer-agnostic.
package section
