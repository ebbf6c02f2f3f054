// Package config loads the YAML configuration of the mdtree CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/alnah/go-mdtree/internal/fileutil"
	"github.com/alnah/go-mdtree/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName names the directory under the XDG config home searched for
// config files.
const AppName = "go-mdtree"

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxPatternLength   = 256  // Glob pattern in workspace.exclude
	MaxExtensionLength = 16   // "svg", "webp"
	MaxStyleLength     = 100  // Style name
	MaxCSSLength       = 1 << 16
	MaxLevelLength     = 10 // "debug", "error"
	MaxListEntries     = 256
	MaxWorkers         = 64
)

// Config holds the CLI configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Images    ImagesConfig    `yaml:"images"`
	Export    ExportConfig    `yaml:"export"`
	Format    FormatConfig    `yaml:"format"`
	Log       LogConfig       `yaml:"log"`
}

// WorkspaceConfig defines where wiki embeds and relative images are looked up.
type WorkspaceConfig struct {
	Root    string   `yaml:"root"`    // Empty = no workspace index
	Exclude []string `yaml:"exclude"` // Glob patterns matched against directory names
}

// ImagesConfig defines which file extensions count as images.
type ImagesConfig struct {
	Extensions []string `yaml:"extensions"` // Empty = built-in list
}

// ExportConfig defines HTML export options.
type ExportConfig struct {
	Style string `yaml:"style"` // Style name, CSS file path or inline CSS
	CSS   string `yaml:"css"`   // Extra CSS appended after the style
	// AssetPath overrides the embedded styles with {assetPath}/styles/*.css.
	AssetPath string `yaml:"assetPath"`
}

// FormatConfig defines options of the fmt command.
type FormatConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for callers that build a
// Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("workspace.root", c.Workspace.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateList("workspace.exclude", c.Workspace.Exclude, MaxPatternLength); err != nil {
		return err
	}
	for i, pattern := range c.Workspace.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: workspace.exclude[%d]: %q: %v", ErrInvalidValue, i, pattern, err)
		}
	}

	if err := validateList("images.extensions", c.Images.Extensions, MaxExtensionLength); err != nil {
		return err
	}

	if err := validateFieldLength("export.style", c.Export.Style, MaxCSSLength); err != nil {
		return err
	}
	if err := validateFieldLength("export.css", c.Export.CSS, MaxCSSLength); err != nil {
		return err
	}
	if err := validateFieldLength("export.assetPath", c.Export.AssetPath, MaxPathLength); err != nil {
		return err
	}

	if c.Format.Workers < 0 || c.Format.Workers > MaxWorkers {
		return fmt.Errorf("%w: format.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Format.Workers)
	}

	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return fmt.Errorf("%w: log.level: %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateList bounds both the entry count and each entry's length.
func validateList(fieldName string, values []string, maxLength int) error {
	if len(values) > MaxListEntries {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, fieldName, len(values), MaxListEntries)
	}
	for i, v := range values {
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", fieldName, i), v, maxLength); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfig returns a configuration with no workspace, the built-in
// image extensions and the default export style.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{Exclude: []string{".git", "node_modules"}},
		Log:       LogConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A relative workspace root is relative to the config file.
	if cfg.Workspace.Root != "" && !filepath.IsAbs(cfg.Workspace.Root) {
		cfg.Workspace.Root = filepath.Join(filepath.Dir(configPath), cfg.Workspace.Root)
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// the current directory, then the XDG config home.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	for _, ext := range extensions {
		paths = append(paths, filepath.Join(xdg.ConfigHome, AppName, name+ext))
	}
	return paths
}

// resolveConfigPath returns the first existing candidate of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
