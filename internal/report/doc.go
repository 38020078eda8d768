// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: plain console text, one block per matching anchor
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a chart
//
// Report data structures live in the model package; writers only render
// them, so a new format does not touch the scanner.
package report
