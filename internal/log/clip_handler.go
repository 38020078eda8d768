package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// DefaultMaxValueLen is the number of runes kept from a long string value.
const DefaultMaxValueLen = 120

// ClipHandler wraps an slog.Handler and shortens long string values.
// Anchor attributes and content can span kilobytes of inline styles and
// markup; clipping keeps one log record on one readable line.
type ClipHandler struct {
	handler slog.Handler
	maxLen  int
}

// NewClipHandler creates a ClipHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used. A maxLen of zero or
// less selects DefaultMaxValueLen.
func NewClipHandler(handler slog.Handler, maxLen int) *ClipHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &ClipHandler{handler: handler, maxLen: maxLen}
}

// Enabled delegates to the underlying handler.
func (h *ClipHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it to the underlying handler.
func (h *ClipHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes clipped and added.
func (h *ClipHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clipped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clipped[i] = h.clipAttr(a)
	}
	return &ClipHandler{handler: h.handler.WithAttrs(clipped), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *ClipHandler) WithGroup(name string) slog.Handler {
	return &ClipHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// clipAttr clips a single attribute, recursing into groups.
func (h *ClipHandler) clipAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clipped := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			clipped[i] = h.clipAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clipped...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, Clip(a.Value.String(), h.maxLen))
	}
	return a
}

// Clip shortens s to maxLen runes. A clipped value ends with "…" and the
// original size, e.g. "<a href=…(12 kB)".
func Clip(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	cut := 0
	for i := range s {
		if maxLen == 0 {
			cut = i
			break
		}
		maxLen--
	}
	return s[:cut] + "…(" + humanize.Bytes(uint64(len(s))) + ")"
}

// NewLogger creates a text logger writing to w with long values clipped.
// The level is Debug when verbose is true and Warn otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewClipHandler(slog.NewTextHandler(w, handlerOptions(verbose)), DefaultMaxValueLen))
}

// NewJSONLogger is like NewLogger but writes JSON records.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewClipHandler(slog.NewJSONHandler(w, handlerOptions(verbose)), DefaultMaxValueLen))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
