package report

import (
	"io"
	"strings"

	"github.com/nao1215/anchorscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations write results in various formats.
type Writer interface {
	// Write outputs a scan report.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.ScanReport) (int, error)

	// WriteRewrite outputs the summary of an href rewrite.
	WriteRewrite(report *model.RewriteReport) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// oneLine replaces line breaks with spaces so a value fits a table cell.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
