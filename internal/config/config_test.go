package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with the expected defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Phrase is Browser version", func(t *testing.T) {
		t.Parallel()
		if cfg.Phrase != "Browser version" {
			t.Errorf("expected Phrase to be 'Browser version', got '%s'", cfg.Phrase)
		}
	})

	t.Run("title matching and verification are off", func(t *testing.T) {
		t.Parallel()
		if cfg.MatchTitle {
			t.Error("expected MatchTitle to be false")
		}
		if cfg.Verify {
			t.Error("expected Verify to be false")
		}
	})

	t.Run("no report format selected", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected plain text report by default")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Targets = []string{"index.html"}
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid config returns nil", modify: func(*Config) {}, wantErr: nil},
		{name: "no targets", modify: func(c *Config) { c.Targets = nil }, wantErr: ErrNoTarget},
		{name: "empty phrase", modify: func(c *Config) { c.Phrase = "" }, wantErr: ErrEmptyPhrase},
		{name: "whitespace phrase", modify: func(c *Config) { c.Phrase = " \t\n" }, wantErr: ErrEmptyPhrase},
		{
			name: "json and markdown together",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{name: "json only", modify: func(c *Config) { c.JSONReport = true }, wantErr: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestConfigValidateRewrite tests rewrite-specific validation.
func TestConfigValidateRewrite(t *testing.T) {
	t.Parallel()

	t.Run("missing href", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Targets = []string{"index.html"}
		if err := cfg.ValidateRewrite(); !errors.Is(err, ErrEmptyHref) {
			t.Errorf("expected ErrEmptyHref, got %v", err)
		}
	})

	t.Run("shared rules still apply", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Href = "/mirror"
		if err := cfg.ValidateRewrite(); !errors.Is(err, ErrNoTarget) {
			t.Errorf("expected ErrNoTarget, got %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Targets = []string{"index.html"}
		cfg.Href = "/mirror"
		if err := cfg.ValidateRewrite(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestConfigValidateReplace tests replace-specific validation.
func TestConfigValidateReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "missing template", modify: func(*Config) {}, wantErr: ErrEmptyTemplate},
		{name: "footer alone is not enough", modify: func(c *Config) { c.FooterTemplate = "F" }, wantErr: ErrEmptyTemplate},
		{name: "shared rules still apply", modify: func(c *Config) { c.Targets = nil; c.Template = "H" }, wantErr: ErrNoTarget},
		{name: "valid", modify: func(c *Config) { c.Template = "H" }, wantErr: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			cfg.Targets = []string{"index.html"}
			tt.modify(cfg)
			if err := cfg.ValidateReplace(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestFileApplyTo tests merging file settings into flags.
func TestFileApplyTo(t *testing.T) {
	t.Parallel()

	yes := true

	t.Run("fills unset flags", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{Phrase: "View online", MatchTitle: &yes, Verify: &yes, Href: "/m"}
		f.ApplyTo(cfg, nil)

		if cfg.Phrase != "View online" || !cfg.MatchTitle || !cfg.Verify || cfg.Href != "/m" {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Phrase = "from flag"
		f := &File{Phrase: "from file", MatchTitle: &yes}
		f.ApplyTo(cfg, func(flag string) bool { return flag == FlagPhrase })

		if cfg.Phrase != "from flag" {
			t.Errorf("expected flag phrase to win, got %q", cfg.Phrase)
		}
		if !cfg.MatchTitle {
			t.Error("expected MatchTitle from file")
		}
	})

	t.Run("templates fill unset flags", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Template = "from flag"
		f := &File{Template: "H", FooterTemplate: "F"}
		f.ApplyTo(cfg, func(flag string) bool { return flag == FlagWith })

		if cfg.Template != "from flag" {
			t.Errorf("expected flag template to win, got %q", cfg.Template)
		}
		if cfg.FooterTemplate != "F" {
			t.Errorf("expected footer template from file, got %q", cfg.FooterTemplate)
		}
	})

	t.Run("unset file fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).ApplyTo(cfg, nil)
		if cfg.Phrase != DefaultPhrase {
			t.Errorf("expected default phrase, got %q", cfg.Phrase)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		var f *File
		f.ApplyTo(cfg, nil)
		if cfg.Phrase != DefaultPhrase {
			t.Errorf("expected default phrase, got %q", cfg.Phrase)
		}
	})
}

// TestLoadConfigFile tests YAML loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.anchorscan")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".anchorscan")
		content := `phrase: "View in browser"
matchTitle: true
verify: false
href: "<%@ include view='MirrorPageUrl' %>"
template: "<%@ include view='UnsubscribeHeader' %>"
footerTemplate: "<%@ include view='UnsubscribeFooter' %>"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Phrase != "View in browser" {
			t.Errorf("unexpected phrase %q", cfg.Phrase)
		}
		if cfg.MatchTitle == nil || !*cfg.MatchTitle {
			t.Error("expected matchTitle true")
		}
		if cfg.Verify == nil || *cfg.Verify {
			t.Error("expected verify explicitly false")
		}
		if !strings.Contains(cfg.Href, "MirrorPageUrl") {
			t.Errorf("unexpected href %q", cfg.Href)
		}
		if !strings.Contains(cfg.Template, "UnsubscribeHeader") || !strings.Contains(cfg.FooterTemplate, "UnsubscribeFooter") {
			t.Errorf("unexpected templates %q, %q", cfg.Template, cfg.FooterTemplate)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".anchorscan")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests configuration file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("phrase: x"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds file in current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("phrase: x"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		if err := os.Chdir(tmpDir); err != nil {
			t.Fatalf("failed to change directory: %v", err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		result := FindConfigFile("")
		if filepath.Base(result) != DefaultConfigFile {
			t.Errorf("expected %s to be found, got %q", DefaultConfigFile, result)
		}
	})
}

// TestXDGConfigDir tests the XDG config location.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty XDG config dir")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected dir to end with %q, got %q", AppName, dir)
	}
}
