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

// NewReplaceCmd creates the replace command.
func NewReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <file>",
		Short: "Replace whole anchors whose link text matches a phrase with a template",
		Long: `Replace swaps every anchor (<a ...>...</a>) selected by the phrase for a
template snippet. With --footer, the last selected anchor gets the footer
template and all earlier ones get the --with template, which suits e-mails
that carry an unsubscribe link in the header and another in the footer.
A single selected anchor counts as the footer.

The resulting HTML is written to stdout or to --output. A summary of the
replaced links is printed to stderr.

Examples:
  # Swap header and footer unsubscribe links for include tags
  anchorscan replace -P Unsubscribe \
    --with "<%@ include view='UnsubscribeHeader' %>" \
    --footer "<%@ include view='UnsubscribeFooter' %>" newsletter.html

  # Same snippet for every match, written to a new file
  anchorscan replace -P "View online" --with "<%@ include view='ViewOnline' %>" \
    -o out/newsletter.html newsletter.html`,
		Args: cobra.ExactArgs(1),
		RunE: runReplaceCmd,
	}

	addMatchFlags(cmd)

	cmd.Flags().String(config.FlagWith, "",
		"Template that replaces each selected anchor (required unless set in the configuration file)")
	cmd.Flags().String(config.FlagFooter, "",
		"Template for the last selected anchor; the others get --with")
	cmd.Flags().StringP("output", "o", "",
		"Write resulting HTML to specified file path (creates directories if needed)")

	return cmd
}

// runReplaceCmd executes the replace command.
func runReplaceCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.ValidateReplace(); err != nil {
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
	text, changes := anchor.ReplaceElements(doc.Text, scanner.Selector(),
		anchor.HeaderFooter(cfg.Template, cfg.FooterTemplate))

	logger.Info("replace finished",
		"source", doc.Name,
		"changes", len(changes),
	)

	output, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	if _, err := io.WriteString(output, text); err != nil {
		return fmt.Errorf("failed to write resulting HTML: %w", err)
	}

	summary := &model.ReplaceReport{
		Source:  doc.Name,
		Footer:  cfg.FooterTemplate != "",
		Changes: changes,
	}
	_, err = report.NewSimpleWriter(cmd.ErrOrStderr()).WriteReplace(summary)
	return err
}
