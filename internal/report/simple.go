package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/anchorscan/internal/model"
)

// SimpleWriter outputs plain console text. Each finding is printed as
//
//	Match 1:
//	  Attributes: href="#" title="Browser version"
//	  Content: Browser version
//
// followed by a blank line. Attributes and content are printed raw, so
// multi-line anchors keep their line breaks.
type SimpleWriter struct {
	baseWriter

	// header prints the source name and size before the findings.
	header bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithHeader prints a header naming the source before each report.
// Useful when several files are scanned in one run.
func WithHeader(header bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.header = header
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the findings of report. Nothing is written for a report
// without findings unless a header or coverage note applies.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	if w.header {
		sb.WriteString(fmt.Sprintf("== %s (%s, %d anchors, %d matched) ==\n\n",
			report.Source, humanize.Bytes(uint64(report.Size)), report.TotalAnchors, len(report.Findings)))
	}

	for _, f := range report.Findings {
		sb.WriteString(fmt.Sprintf("Match %d:\n", f.Index))
		sb.WriteString(fmt.Sprintf("  Attributes: %s\n", f.Attributes))
		sb.WriteString(fmt.Sprintf("  Content: %s\n", f.Content))
		sb.WriteString("\n")
	}

	w.writeCoverage(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeCoverage notes a difference between pattern and parser counts.
func (w *SimpleWriter) writeCoverage(sb *strings.Builder, report *model.ScanReport) {
	gap := report.CoverageGap()
	switch {
	case gap > 0:
		sb.WriteString(fmt.Sprintf("Note: the HTML parser found %d anchor(s) in %s that the pattern did not match.\n",
			gap, report.Source))
	case gap < 0:
		sb.WriteString(fmt.Sprintf("Note: the pattern matched %d element(s) in %s that the HTML parser did not treat as anchors.\n",
			-gap, report.Source))
	}
}

// WriteRewrite outputs a one-line summary followed by one line per change.
func (w *SimpleWriter) WriteRewrite(report *model.RewriteReport) (int, error) {
	var sb strings.Builder

	if report.Count() == 0 {
		sb.WriteString("No matching links found\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("Links updated: %d found\n", report.Count()))
	for _, c := range report.Changes {
		old := c.OldHref
		if old == "" {
			old = "(none)"
		}
		sb.WriteString(fmt.Sprintf("  [%d] by %s: %s -> %s\n", c.Index, c.MatchedBy, old, c.NewHref))
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteReplace outputs a one-line summary followed by one line per
// replaced element, naming the template it received.
func (w *SimpleWriter) WriteReplace(report *model.ReplaceReport) (int, error) {
	var sb strings.Builder

	if report.Count() == 0 {
		sb.WriteString("No matching links found\n")
		return w.output.Write([]byte(sb.String()))
	}

	if report.Footer {
		sb.WriteString(fmt.Sprintf("Links replaced: %d found (%d header, 1 footer)\n",
			report.Count(), report.HeaderCount()))
	} else {
		sb.WriteString(fmt.Sprintf("Links replaced: %d found\n", report.Count()))
	}

	for _, c := range report.Changes {
		role := "header"
		if report.Footer && c.Index == report.Count() {
			role = "footer"
		}
		sb.WriteString(fmt.Sprintf("  [%d] %s by %s: %s\n",
			c.Index, role, c.MatchedBy, truncateString(oneLine(c.OldElement), 60)))
	}

	return w.output.Write([]byte(sb.String()))
}
