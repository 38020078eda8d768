package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nao1215/anchorscan/internal/config"
	"gopkg.in/yaml.v3"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultConfigFile {
			t.Errorf("expected default %q, got %q", config.DefaultConfigFile, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, ".anchorscan")

		var out bytes.Buffer
		cmd := NewInitCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"-o", outputPath})

		err := cmd.Execute()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify file exists
		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			t.Error("expected config file to be created")
		}

		// The written file must load as a configuration file
		cf, err := config.LoadConfigFile(outputPath)
		if err != nil {
			t.Fatalf("failed to load generated config: %v", err)
		}
		if cf.Phrase != config.DefaultPhrase {
			t.Errorf("expected phrase %q, got %q", config.DefaultPhrase, cf.Phrase)
		}

		if !strings.Contains(out.String(), outputPath) {
			t.Errorf("expected output to name the file, got %q", out.String())
		}
	})

	t.Run("fails if file exists without force", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, ".anchorscan")

		// Create existing file
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-o", outputPath})

		err := cmd.Execute()
		if err == nil {
			t.Error("expected error when file exists")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected 'already exists' error, got %v", err)
		}
	})

	t.Run("overwrites file with force flag", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, ".anchorscan")

		// Create existing file
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-o", outputPath, "-f"})

		err := cmd.Execute()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify file was overwritten
		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}

		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "subdir", "nested", ".anchorscan")

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-o", outputPath})

		err := cmd.Execute()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify file exists
		if _, err := os.Stat(outputPath); os.IsNotExist(err) {
			t.Error("expected config file to be created in nested directory")
		}
	})

	t.Run("file has correct permissions", func(t *testing.T) {
		// Skip on Windows as it doesn't support Unix-style file permissions
		if runtime.GOOS == "windows" {
			t.Skip("skipping permission test on Windows")
		}

		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, ".anchorscan")

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-o", outputPath})

		err := cmd.Execute()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("failed to stat file: %v", err)
		}

		// Check file permissions (0600)
		perm := info.Mode().Perm()
		if perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	})
}

// TestConfigTemplate tests the embedded config template.
func TestConfigTemplate(t *testing.T) {
	t.Parallel()

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		t.Fatalf("failed to read template: %v", err)
	}

	t.Run("template is not empty", func(t *testing.T) {
		t.Parallel()
		if len(content) == 0 {
			t.Error("expected non-empty template")
		}
	})

	t.Run("template is valid YAML", func(t *testing.T) {
		t.Parallel()
		var cf config.File
		if err := yaml.Unmarshal(content, &cf); err != nil {
			t.Fatalf("expected template to parse, got %v", err)
		}
		if cf.MatchTitle != nil || cf.Verify != nil || cf.Href != "" || cf.Template != "" || cf.FooterTemplate != "" {
			t.Errorf("expected optional settings to be commented out, got %+v", cf)
		}
	})

	t.Run("template documents every setting", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"phrase:", "matchTitle:", "verify:", "href:", "template:", "footerTemplate:"} {
			if !strings.Contains(string(content), key) {
				t.Errorf("expected template to mention %q", key)
			}
		}
	})

	t.Run("template contains documentation comments", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(string(content), "#") {
			t.Error("expected template to contain documentation comments")
		}
	})
}
