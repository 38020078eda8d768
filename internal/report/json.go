package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/anchorscan/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
// Each report is written as one JSON document followed by a newline.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the scan report in JSON format.
func (w *JSONWriter) Write(report *model.ScanReport) (int, error) {
	return w.writeJSON(report)
}

// WriteRewrite outputs the rewrite report in JSON format.
func (w *JSONWriter) WriteRewrite(report *model.RewriteReport) (int, error) {
	return w.writeJSON(report)
}

// writeJSON encodes v and writes it to the output. HTML characters are
// not escaped so attributes and content stay readable.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if w.indent {
		encoder.SetIndent(w.indentPrefix, w.indentString)
	}

	// Encode appends the trailing newline
	if err := encoder.Encode(v); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
