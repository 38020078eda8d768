// Package log provides logging helpers built on top of the standard slog
// package.
//
// Scanned HTML is often long: a single anchor in an exported template can
// carry kilobytes of inline style. The ClipHandler wraps any slog.Handler
// and shortens long string attribute values, appending the original size:
//
//	style="color: rgb(0, 104, 165); text-deco…(2.1 kB)
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("anchor matched", "attributes", m.Attributes)
//
//	// Set as default logger
//	slog.SetDefault(logger)
//
// NewJSONLogger does the same with JSON output for log collectors.
package log
