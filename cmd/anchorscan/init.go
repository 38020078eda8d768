package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/anchorscan/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/anchorscan.yaml
var configTemplate embed.FS

// templatePath is the location of the template inside configTemplate.
const templatePath = "templates/anchorscan.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new anchorscan configuration file",
		Long: `Initialize creates a new .anchorscan configuration file in the current directory.

The generated file includes:
- The default phrase
- Commented settings for title matching and parser verification
- A commented replacement href for the rewrite command
- Commented element templates for the replace command

Examples:
  # Create .anchorscan in current directory
  anchorscan init

  # Create config file at a specific path
  anchorscan init -o myconfig.yaml

  # Force overwrite existing file
  anchorscan init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change:")
	fmt.Fprintln(out, "  - The phrase links are matched against")
	fmt.Fprintln(out, "  - Title matching and parser verification")
	fmt.Fprintln(out, "  - The replacement href used by rewrite")
	fmt.Fprintln(out, "  - The element templates used by replace")

	return nil
}
