package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdtree/internal/hints"
)

// ErrNotFormatted is returned by fmt --check when files would change.
var ErrNotFormatted = errors.New("files not in canonical form")

// runFmt rewrites Markdown files in canonical form. Without paths it
// formats every Markdown file of the workspace.
func runFmt(ctx context.Context, args []string, env *Environment) error {
	f := &fmtFlags{}
	fs := buildFmtFlagSet(env.Stderr, f)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	root := s.workspaceRoot(f.workspace)
	idx, err := s.index(ctx, root)
	if err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if idx == nil {
			return fmt.Errorf("%w: pass files or a workspace%s", ErrNoInput, hints.ForWorkspace(root))
		}
		paths = idx.Markdown()
	}

	files, err := discoverFiles(paths, s.cfg.Workspace.Exclude)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		s.log.Info("no markdown files found")
		return nil
	}

	conv, err := s.converter(idx)
	if err != nil {
		return err
	}

	start := env.Now()
	workers := resolveWorkers(f.workers, s.cfg.Format.Workers)
	s.log.Debug("formatting", "files", len(files), "workers", workers, "check", f.check)

	results := formatBatch(ctx, conv, files, workers, f.check)
	summary := reportResults(results, f.check, s, env)
	if len(results) > 1 {
		s.log.BatchCompleted(len(results), summary.Failed, env.Now().Sub(start))
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", summary.Failed)
	}
	if f.check && summary.Changed > 0 {
		return fmt.Errorf("%w: %d file(s)%s", ErrNotFormatted, summary.Changed, hints.ForNotFormatted(summary.Changed))
	}
	return nil
}
