// Package format provides the display formatting shared by every report
// renderer, plus the inverse parsers used to verify artifact fidelity.
//
// Every figure in every artifact passes through this package, which is what
// guarantees the PDF, workbook, markdown, and text renditions of a report
// present identical strings for identical values.
//
// Design decision: Formatting lives in its own package rather than on the
// model types because the model mirrors the analysis service's payload and
// should stay presentation-free. The section catalog is the only caller that
// decides which formatter applies to which metric.
//
// All functions are pure and safe for concurrent use.
package format
