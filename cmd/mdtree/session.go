package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	mdtree "github.com/alnah/go-mdtree"
	"github.com/alnah/go-mdtree/internal/config"
	"github.com/alnah/go-mdtree/internal/hints"
	"github.com/alnah/go-mdtree/internal/logger"
	"github.com/alnah/go-mdtree/internal/workspace"
)

// session carries what every command needs once flags are parsed.
type session struct {
	cfg *config.Config
	log *logger.Logger
	env *Environment
}

// newSession loads the config file, applies environment overrides and
// builds the stderr logger.
func newSession(common commonFlags, env *Environment) (*session, error) {
	envCfg := loadEnvConfig()
	if !common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg := config.DefaultConfig()
	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyEnvConfig(envCfg, cfg)

	l := logger.NewWithLevel(env.Stderr, logLevel(common, cfg.Log.Level))
	if name != "" {
		l.ConfigLoaded(name)
	}

	return &session{cfg: cfg, log: l, env: env}, nil
}

// logLevel resolves the log level: --verbose and --quiet win over the
// config file.
func logLevel(common commonFlags, configured string) log.Level {
	switch {
	case common.verbose:
		return log.DebugLevel
	case common.quiet:
		return log.ErrorLevel
	default:
		return logger.ParseLevel(configured)
	}
}

// index scans the workspace root. A nil index and no error mean no
// workspace is configured.
func (s *session) index(ctx context.Context, root string) (*workspace.Index, error) {
	if root == "" {
		return nil, nil
	}
	start := time.Now()
	idx, err := workspace.Scan(ctx, root, workspace.ScanOptions{Exclude: s.cfg.Workspace.Exclude})
	if err != nil {
		return nil, fmt.Errorf("indexing workspace: %w%s", err, hints.ForWorkspace(root))
	}
	s.log.WorkspaceIndexed(idx.Root(), idx.Len())
	s.log.Debug("workspace scan finished", "duration", time.Since(start).Round(time.Millisecond))
	return idx, nil
}

// converter builds a Converter from the session config. idx may be nil.
func (s *session) converter(idx *workspace.Index) (*mdtree.Converter, error) {
	opts := []mdtree.Option{mdtree.WithLogger(s.log.Logger)}
	if idx != nil {
		opts = append(opts, mdtree.WithFileIndex(idx))
	}
	if exts := s.cfg.Images.Extensions; len(exts) > 0 {
		opts = append(opts, mdtree.WithImageExtensions(exts...))
	}
	if s.cfg.Export.AssetPath != "" {
		opts = append(opts, mdtree.WithAssetPath(s.cfg.Export.AssetPath))
	}
	if s.cfg.Export.Style != "" {
		opts = append(opts, mdtree.WithStyle(s.cfg.Export.Style))
	}

	conv, err := mdtree.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, mdtree.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mdtree.StyleNames()))
		}
		return nil, err
	}
	return conv, nil
}

// workspaceRoot picks the --workspace flag over the configured root.
func (s *session) workspaceRoot(flagRoot string) string {
	if flagRoot != "" {
		return flagRoot
	}
	return s.cfg.Workspace.Root
}
