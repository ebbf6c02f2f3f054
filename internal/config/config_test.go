package config

// Notes:
// - Tests that change the working directory use t.Chdir and therefore do
//   not run in parallel.
// - XDG lookup is only checked through SearchPaths; writing into the real
//   config home from a test is avoided.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Neutral defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Workspace.Root != "" {
		t.Errorf("Workspace.Root = %q, want empty", cfg.Workspace.Root)
	}
	if diff := cmp.Diff([]string{".git", "node_modules"}, cfg.Workspace.Exclude); diff != "" {
		t.Errorf("Workspace.Exclude mismatch (-want +got):\n%s", diff)
	}
	if cfg.Format.Workers != 0 {
		t.Errorf("Format.Workers = %d, want 0", cfg.Format.Workers)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFieldLength - Length limits
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Ranges, patterns and enums
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "workers at max",
			mutate: func(c *Config) { c.Format.Workers = MaxWorkers },
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Format.Workers = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Format.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad exclude pattern",
			mutate:  func(c *Config) { c.Workspace.Exclude = []string{"[unclosed"} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "long exclude pattern",
			mutate:  func(c *Config) { c.Workspace.Exclude = []string{strings.Repeat("a", MaxPatternLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "too many extensions",
			mutate: func(c *Config) {
				c.Images.Extensions = make([]string, MaxListEntries+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "long extension",
			mutate:  func(c *Config) { c.Images.Extensions = []string{strings.Repeat("x", MaxExtensionLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "level is case-insensitive",
			mutate: func(c *Config) { c.Log.Level = "DEBUG" },
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "long root",
			mutate:  func(c *Config) { c.Workspace.Root = strings.Repeat("r", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File lookup and decoding
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := writeConfig(t, dir, "test.yaml", `workspace:
  root: "/notes"
  exclude: [".trash"]
images:
  extensions: ["png", "avif"]
export:
  style: "technical"
  css: "body { margin: 0; }"
format:
  workers: 4
log:
  level: "debug"
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := &Config{
			Workspace: WorkspaceConfig{Root: "/notes", Exclude: []string{".trash"}},
			Images:    ImagesConfig{Extensions: []string{"png", "avif"}},
			Export:    ExportConfig{Style: "technical", CSS: "body { margin: 0; }"},
			Format:    FormatConfig{Workers: 4},
			Log:       LogConfig{Level: "debug"},
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		t.Parallel()

		configPath := writeConfig(t, t.TempDir(), "partial.yaml", "format:\n  workers: 2\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
		}
		if len(cfg.Workspace.Exclude) != 2 {
			t.Errorf("Workspace.Exclude = %v, want defaults", cfg.Workspace.Exclude)
		}
	})

	t.Run("relative root is relative to the config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := writeConfig(t, dir, "rel.yaml", "workspace:\n  root: vault\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if want := filepath.Join(dir, "vault"); cfg.Workspace.Root != want {
			t.Errorf("Workspace.Root = %q, want %q", cfg.Workspace.Root, want)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope", "config.yaml")
		if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		configPath := writeConfig(t, t.TempDir(), "invalid.yaml", "export: [unclosed")
		if _, err := LoadConfig(configPath); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		configPath := writeConfig(t, t.TempDir(), "unknown.yaml", "unknownField: true\n")
		if _, err := LoadConfig(configPath); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value is reported", func(t *testing.T) {
		t.Parallel()

		configPath := writeConfig(t, t.TempDir(), "workers.yaml", "format:\n  workers: 1000\n")
		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "myconfig.yml", "log:\n  level: warn\n")
	t.Chdir(dir)

	cfg, err := LoadConfig("myconfig")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}

	_, err = LoadConfig("does-not-exist-anywhere")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "does-not-exist-anywhere.yaml") {
		t.Errorf("error %q should list tried paths", err)
	}
}

// ---------------------------------------------------------------------------
// TestSearchPaths - Lookup order
// ---------------------------------------------------------------------------

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("work")
	if len(paths) != 4 {
		t.Fatalf("SearchPaths() = %v, want 4 entries", paths)
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("local candidates = %v, want work.yaml then work.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppName) {
			t.Errorf("user candidate %q should live under %s", p, AppName)
		}
	}
}
