package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and friends so callers can
// use errors.Is() while users still get a readable message.
var (
	// ErrNoTarget is returned when no input file is given.
	ErrNoTarget = errors.New("no target specified: provide one or more HTML files (or - for stdin)")

	// ErrEmptyPhrase is returned when the phrase has no words.
	// An empty phrase would select every anchor.
	ErrEmptyPhrase = errors.New("invalid phrase: must contain at least one word")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyHref is returned by the rewrite command when no replacement
	// href is configured.
	ErrEmptyHref = errors.New("no replacement href: use --href or set href in the configuration file")

	// ErrEmptyTemplate is returned by the replace command when no element
	// template is configured.
	ErrEmptyTemplate = errors.New("no replacement template: use --with or set template in the configuration file")
)
