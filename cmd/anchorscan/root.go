package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for anchorscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchorscan",
		Short: "Find HTML links by their visible text",
		Long: `anchorscan locates anchor (<a>) elements in HTML and reports the ones whose
link text contains a phrase, tolerating any whitespace or line breaks between
words and ignoring case. The default phrase is "Browser version", the label
of the "view this e-mail in your browser" link in exported e-mail templates.

It can also rewrite the href of the matching links, or replace the links
entirely with template snippets.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewRewriteCmd())
	cmd.AddCommand(NewReplaceCmd())
	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
