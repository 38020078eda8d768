package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/anchorscan/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, for pasting
// into review tickets alongside the template being checked.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the scan report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeFindings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and scan properties.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Anchor Scan Report")
	md.PlainText("")

	rows := [][]string{
		{"Source", "`" + report.Source + "`"},
		{"Size", humanize.Bytes(uint64(report.Size))},
		{"Phrase", "`" + report.Phrase + "`"},
		{"Title matching", yesNo(report.MatchTitle)},
		{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
		{"Anchors", strconv.Itoa(report.TotalAnchors)},
		{"Matches", strconv.Itoa(len(report.Findings))},
	}
	if report.DOMAnchors != nil {
		rows = append(rows, []string{"Parser anchors", strconv.Itoa(*report.DOMAnchors)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the match distribution and an alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.ScanReport) {
	if report.TotalAnchors > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Anchors"),
			piechart.WithShowData(true),
		)
		if matched := len(report.Findings); matched > 0 {
			chart.LabelAndIntValue("Matched", uint64(matched))
		}
		if other := report.TotalAnchors - len(report.Findings); other > 0 {
			chart.LabelAndIntValue("Other", uint64(other))
		}
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}

	gap := report.CoverageGap()
	switch {
	case gap > 0:
		md.Warningf("The HTML parser found %d anchor(s) that the pattern did not match. Check for unterminated or malformed tags.", gap)
	case gap < 0:
		md.Importantf("The pattern matched %d element(s) that the HTML parser did not treat as anchors.", -gap)
	case !report.HasFindings():
		md.Note("No anchors matched the phrase.")
	default:
		md.Tip("All matching anchors are listed below.")
	}
	md.PlainText("")
}

// writeFindings writes a table of findings and the raw markup of each.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Matches")
	md.PlainText("")

	if !report.HasFindings() {
		md.PlainText("No matching anchors.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Findings))
	for i, f := range report.Findings {
		href := f.Href
		if href == "" {
			href = "-"
		}
		rows[i] = []string{
			strconv.Itoa(f.Index),
			escapeCell(truncateString(f.Text, 50)),
			escapeCell(truncateString(href, 60)),
			f.MatchedBy.String(),
			strconv.Itoa(f.Offset),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Text", "Href", "Matched by", "Offset"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, f := range report.Findings {
		md.Details("Match "+strconv.Itoa(f.Index),
			"Attributes: "+f.Attributes+"\n\nContent: "+f.Content)
	}
	md.PlainText("")
}

// WriteRewrite outputs the rewrite summary in Markdown format.
func (w *MarkdownWriter) WriteRewrite(report *model.RewriteReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Href Rewrite Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"New href", "`" + report.NewHref + "`"},
			{"Links updated", strconv.Itoa(report.Count())},
		},
	})
	md.PlainText("")

	if report.Count() == 0 {
		md.Note("No matching links found.")
	} else {
		rows := make([][]string, len(report.Changes))
		for i, c := range report.Changes {
			old := c.OldHref
			if old == "" {
				old = "-"
			}
			rows[i] = []string{strconv.Itoa(c.Index), escapeCell(old), c.MatchedBy.String()}
		}
		md.Table(markdown.TableSet{
			Header: []string{"#", "Old href", "Matched by"},
			Rows:   rows,
		})
	}
	md.PlainText("")
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [anchorscan](https://github.com/nao1215/anchorscan)*")
}

// escapeCell keeps a value on one line and escapes table separators.
func escapeCell(s string) string {
	return strings.ReplaceAll(oneLine(s), "|", `\|`)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
