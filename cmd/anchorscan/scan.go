package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/anchorscan/internal/anchor"
	"github.com/nao1215/anchorscan/internal/config"
	applog "github.com/nao1215/anchorscan/internal/log"
	"github.com/nao1215/anchorscan/internal/report"
	"github.com/nao1215/anchorscan/internal/source"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Print anchors whose link text matches a phrase",
		Long: `Scan reads HTML files and prints every anchor (<a ...>...</a>) whose
content contains the phrase. Words of the phrase are compared
case-insensitively and may be separated by any whitespace, including
line breaks and non-breaking spaces.

Files that cannot be read are reported and skipped. Use "-" to read
standard input.

Examples:
  # Find "Browser version" links in an exported e-mail template
  anchorscan scan newsletter.html

  # Look for a different phrase in several files
  anchorscan scan -P "View online" a.html b.html

  # Also select links whose title attribute equals the phrase
  anchorscan scan --title newsletter.html

  # Cross-check with an HTML parser and write a Markdown report
  anchorscan scan --verify -m -o reports/newsletter.md newsletter.html

Configuration file (.anchorscan) example:
  phrase: "Browser version"
  matchTitle: true
  verify: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	addMatchFlags(cmd)

	cmd.Flags().Bool(config.FlagVerify, false,
		"Count anchors with an HTML parser too and report the ones the pattern missed")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// addMatchFlags registers the flags shared by scan, rewrite and replace.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(config.FlagPhrase, "P", config.DefaultPhrase,
		"Phrase the link text must contain")
	cmd.Flags().BoolP(config.FlagTitle, "t", false,
		"Also select anchors whose title attribute equals the phrase")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .anchorscan in current or home directory)")
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	slog.SetDefault(logger)

	return runScan(cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags, completed by the
// configuration file when one is found.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error

	cfg.Phrase, err = flags.GetString(config.FlagPhrase)
	if err != nil {
		return nil, err
	}

	cfg.MatchTitle, err = flags.GetBool(config.FlagTitle)
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// Flags below exist only on some commands.
	if flags.Lookup(config.FlagVerify) != nil {
		if cfg.Verify, err = flags.GetBool(config.FlagVerify); err != nil {
			return nil, err
		}
	}
	if flags.Lookup(config.FlagHref) != nil {
		if cfg.Href, err = flags.GetString(config.FlagHref); err != nil {
			return nil, err
		}
	}
	if flags.Lookup(config.FlagWith) != nil {
		if cfg.Template, err = flags.GetString(config.FlagWith); err != nil {
			return nil, err
		}
		if cfg.FooterTemplate, err = flags.GetString(config.FlagFooter); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("json") != nil {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	// If the user named a config file it must exist; otherwise a missing
	// file just leaves the flag values in place.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg, flags.Changed)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args

	return cfg, nil
}

// setupLogger creates a structured logger writing to the command's stderr.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	jsonLog, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		jsonLog, _ = cmd.Root().PersistentFlags().GetBool("log-json") //nolint:errcheck // Defaults to text output
	}

	if jsonLog {
		return applog.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return applog.NewLogger(cmd.ErrOrStderr(), verbose)
}

// runScan scans every target in argument order.
func runScan(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting scan",
		"targets", cfg.Targets,
		"phrase", cfg.Phrase,
		"matchTitle", cfg.MatchTitle,
		"verify", cfg.Verify,
	)

	output, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	scanner := anchor.NewScanner(cfg.Phrase,
		anchor.WithMatchTitle(cfg.MatchTitle),
		anchor.WithVerify(cfg.Verify),
		anchor.WithLogger(logger),
	)
	writer := newReportWriter(cfg, output)

	for _, target := range cfg.Targets {
		doc, err := source.Read(target)
		if err != nil {
			logger.Debug("skipping unreadable input", "target", target, "error", err)
			reportInputError(cmd.OutOrStdout(), err)
			continue
		}

		scanReport := scanner.Scan(doc.Name, doc.Text)
		if _, err := writer.Write(scanReport); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}
	}

	return nil
}

// reportInputError prints the console message for a failed read.
func reportInputError(w io.Writer, err error) {
	var srcErr *source.Error
	switch {
	case errors.Is(err, source.ErrInputNotFound) && errors.As(err, &srcErr):
		fmt.Fprintf(w, "Error: File '%s' not found.\n", srcErr.Name)
	case errors.As(err, &srcErr):
		fmt.Fprintf(w, "Error reading file: %v\n", srcErr.Err)
	default:
		fmt.Fprintf(w, "Error reading file: %v\n", err)
	}
}

// newReportWriter selects the report format from cfg.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithHeader(len(cfg.Targets) > 1))
	}
}

// openOutput returns the report destination: the named file, or the
// command's stdout when path is empty. The returned func closes the file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports quote the scanned markup, which may be private, so keep them owner-only.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil //nolint:errcheck // Best effort close after writes
}
