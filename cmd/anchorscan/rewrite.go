package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/anchorscan/internal/anchor"
	"github.com/nao1215/anchorscan/internal/config"
	"github.com/nao1215/anchorscan/internal/model"
	"github.com/nao1215/anchorscan/internal/report"
	"github.com/nao1215/anchorscan/internal/source"
	"github.com/spf13/cobra"
)

// NewRewriteCmd creates the rewrite command.
func NewRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite <file>",
		Short: "Replace the href of anchors whose link text matches a phrase",
		Long: `Rewrite sets the href of every anchor selected by the phrase to a new
value. An existing href is replaced; anchors without one get href="..."
prepended to their attributes. All other text is left untouched.

The rewritten HTML is written to stdout or to --output. A summary of the
changed links is printed to stderr.

Examples:
  # Point the "Browser version" link at the mirror page placeholder
  anchorscan rewrite --href "<%@ include view='MirrorPageUrl' %>" newsletter.html

  # Rewrite into a new file, matching titles as well
  anchorscan rewrite --title --href /online.html -o out/newsletter.html newsletter.html`,
		Args: cobra.ExactArgs(1),
		RunE: runRewriteCmd,
	}

	addMatchFlags(cmd)

	cmd.Flags().String(config.FlagHref, "",
		"New href value (required unless set in the configuration file)")
	cmd.Flags().StringP("output", "o", "",
		"Write rewritten HTML to specified file path (creates directories if needed)")

	return cmd
}

// runRewriteCmd executes the rewrite command.
func runRewriteCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.ValidateRewrite(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	slog.SetDefault(logger)

	doc, err := source.Read(cfg.Targets[0])
	if err != nil {
		return err
	}

	scanner := anchor.NewScanner(cfg.Phrase,
		anchor.WithMatchTitle(cfg.MatchTitle),
		anchor.WithLogger(logger),
	)
	text, changes := anchor.ReplaceHref(doc.Text, cfg.Href, scanner.Selector())

	logger.Info("rewrite finished",
		"source", doc.Name,
		"changes", len(changes),
	)

	output, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	if _, err := io.WriteString(output, text); err != nil {
		return fmt.Errorf("failed to write rewritten HTML: %w", err)
	}

	summary := &model.RewriteReport{
		Source:  doc.Name,
		NewHref: cfg.Href,
		Changes: changes,
	}
	_, err = report.NewSimpleWriter(cmd.ErrOrStderr()).WriteRewrite(summary)
	return err
}
