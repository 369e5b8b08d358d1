// Package render turns an evaluated report into export artifacts.
//
// This package contains one renderer per artifact kind:
//   - DocumentRenderer: paginated PDF report for presentations
//   - WorkbookRenderer: flat XLSX spreadsheet for further analysis
//   - MarkdownRenderer: GitHub Flavored Markdown for documentation
//   - TextWriter: plain-text summary for terminal display
//
// All renderers walk the same section catalog (package section) and format
// figures through the same registry (package format), so every artifact
// presents identical values in the canonical section order. Renderers differ
// only in layout: the PDF renderer solves pagination, the others are linear.
//
// Renderers hold no mutable state between calls; each Render call builds its
// own cursor or row accumulator from scratch and treats the model as
// read-only. Rendering performs no I/O.
package render
