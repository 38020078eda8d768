package main

import (
	"fmt"

	"github.com/nao1215/anchorscan/internal/anchor"
	"github.com/nao1215/anchorscan/internal/config"
	"github.com/spf13/cobra"
)

// demoHTML is a "Browser version" link as exported e-mail templates write
// it: attributes and link text both span several lines.
const demoHTML = `<a href="#" target="_blank"
                rel="noopener" title="Browser version"
                style="color: rgb(0, 104, 165); text-decoration: underline;">Browser
                version</a>`

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the matcher on a built-in sample anchor",
		Long: `Demo extracts anchors from a built-in multi-line sample and shows which
of them satisfy the phrase. It is a quick way to check how a phrase is
matched across line breaks.

Examples:
  # Use the built-in sample and the default phrase
  anchorscan demo

  # Try a phrase against your own snippet
  anchorscan demo -P "View online" --html '<a href="#">View
  online</a>'`,
		Args: cobra.NoArgs,
		RunE: runDemoCmd,
	}

	cmd.Flags().StringP(config.FlagPhrase, "P", config.DefaultPhrase,
		"Phrase the link text must contain")
	cmd.Flags().String("html", demoHTML, "HTML snippet to scan instead of the built-in sample")

	return cmd
}

// runDemoCmd executes the demo command.
func runDemoCmd(cmd *cobra.Command, _ []string) error {
	phrase, err := cmd.Flags().GetString(config.FlagPhrase)
	if err != nil {
		return err
	}
	html, err := cmd.Flags().GetString("html")
	if err != nil {
		return err
	}

	p := anchor.NewPhrase(phrase)
	out := cmd.OutOrStdout()

	for i, m := range anchor.ExtractAnchors(html) {
		fmt.Fprintf(out, "Match %d:\n", i+1)
		fmt.Fprintf(out, "  Attributes: %s\n", m.Attributes)
		fmt.Fprintf(out, "  Content: '%s'\n", m.Content)
		if p.Match(m.Content) {
			fmt.Fprintf(out, "  ✓ Matches '%s' pattern!\n", p)
		}
		fmt.Fprintln(out)
	}

	return nil
}
