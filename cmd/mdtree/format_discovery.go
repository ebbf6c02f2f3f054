package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-mdtree/internal/config"
	"github.com/alnah/go-mdtree/internal/fileutil"
	"github.com/alnah/go-mdtree/internal/workspace"
)

// ErrInvalidWorkerCount indicates a --workers value out of range.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// discoverFiles expands paths into Markdown files. Files must carry a
// Markdown extension; directories are walked, skipping hidden and excluded
// directories. A file reached twice is listed once.
func discoverFiles(paths, exclude []string) ([]FileToFormat, error) {
	var files []FileToFormat
	seen := make(map[string]bool)

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if seen[abs] {
			return nil
		}
		seen[abs] = true
		files = append(files, FileToFormat{Path: path, Dir: filepath.Dir(abs)})
		return nil
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateMarkdownExtension(p); err != nil {
				return nil, err
			}
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				if path != p && workspace.Excluded(d.Name(), exclude) {
					return filepath.SkipDir
				}
				return nil
			}
			if !fileutil.IsMarkdown(path) {
				return nil
			}
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the fmt fan-out.
// Priority: explicit flag > config/env > GOMAXPROCS (set by automaxprocs
// for containers), capped at config.MaxWorkers.
func resolveWorkers(flagWorkers, configured int) int {
	n := flagWorkers
	if n <= 0 {
		n = configured
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		return 1
	}
	if n > config.MaxWorkers {
		return config.MaxWorkers
	}
	return n
}
