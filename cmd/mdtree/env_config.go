package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdtree/internal/config"
	"github.com/alnah/go-mdtree/internal/hints"
)

// Environment variables read by the CLI.
const (
	envConfigPath = "MDTREE_CONFIG"
	envWorkspace  = hints.EnvWorkspace
	envStyle      = "MDTREE_STYLE"
	envWorkers    = "MDTREE_WORKERS"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDTREE_CONFIG: config file name or path
	Workspace  string // MDTREE_WORKSPACE: workspace root for image lookup
	Style      string // MDTREE_STYLE: export style name, path or CSS
	Workers    int    // MDTREE_WORKERS: fmt workers
}

// knownEnvVars lists valid MDTREE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath: true,
	envWorkspace:  true,
	envStyle:      true,
	envWorkers:    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv(envConfigPath),
		Workspace:  os.Getenv(envWorkspace),
		Style:      os.Getenv(envStyle),
	}

	if workers := os.Getenv(envWorkers); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for every unrecognized MDTREE_*
// variable, e.g. MDTREE_WORKSPCE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MDTREE_") {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config values that are still empty from the
// environment. Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Workspace != "" && cfg.Workspace.Root == "" {
		cfg.Workspace.Root = env.Workspace
	}
	if env.Style != "" && cfg.Export.Style == "" {
		cfg.Export.Style = env.Style
	}
	if env.Workers > 0 && cfg.Format.Workers == 0 {
		cfg.Format.Workers = env.Workers
	}
}
