package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultPhrase is the link text that anchors are matched against.
	// Exported e-mail templates label their "view in browser" link this way.
	DefaultPhrase = "Browser version"

	// AppName is the application name used for XDG directory paths.
	AppName = "anchorscan"
)

// Config holds all configuration options for anchorscan.
// It is populated from CLI flags, optionally completed by a configuration
// file, and passed to the commands explicitly rather than kept as global state.
type Config struct {
	// Phrase is the phrase anchor content must contain.
	// Words are matched case-insensitively with any whitespace between them.
	Phrase string

	// MatchTitle also selects anchors whose title attribute equals Phrase.
	MatchTitle bool

	// Verify counts anchors with an HTML parser as well and reports
	// anchors the pattern did not find.
	Verify bool

	// Href is the replacement href used by the rewrite command.
	Href string

	// Template replaces whole anchor elements in the replace command.
	Template string

	// FooterTemplate, when set, replaces the last selected anchor instead
	// of Template.
	FooterTemplate string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given with --config.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path. Stdout is used when empty.
	ReportFile string

	// Targets are the files to read; "-" reads standard input.
	Targets []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Phrase: DefaultPhrase,
	}
}

// XDGConfigDir returns the XDG config directory for anchorscan.
// On Linux: ~/.config/anchorscan
// On macOS: ~/Library/Application Support/anchorscan
// On Windows: %APPDATA%\anchorscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the options shared by all scanning commands and returns
// the first problem found.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if strings.TrimSpace(c.Phrase) == "" {
		return ErrEmptyPhrase
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// ValidateRewrite checks the options of the rewrite command.
func (c *Config) ValidateRewrite() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Href) == "" {
		return ErrEmptyHref
	}

	return nil
}

// ValidateReplace checks the options of the replace command.
func (c *Config) ValidateReplace() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Template == "" {
		return ErrEmptyTemplate
	}

	return nil
}
