// Package main provides the entry point for the EquityEngine CLI.
//
// EquityEngine turns a property investment analysis into shareable report
// artifacts: a paginated PDF, a flat XLSX workbook, and GitHub Flavored
// Markdown.
//
// Usage:
//
//	equityengine export analysis.json
//	equityengine export --format all analysis.json
//	equityengine inspect analysis.json
//
// See --help for all available options.
package main

// main is the entry point for EquityEngine.
func main() {
	Execute()
}
