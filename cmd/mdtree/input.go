package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdtree/internal/fileutil"
	"github.com/alnah/go-mdtree/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrUsage            = errors.New("invalid arguments")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdioPath names standard input or output in place of a file.
const stdioPath = "-"

// source is one command input.
type source struct {
	path    string // "" for stdin
	dir     string // absolute directory of path, "" for stdin
	content []byte
}

// readSource reads the single positional argument, or stdin when it is
// absent or "-".
func readSource(args []string, env *Environment) (*source, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}
	if len(args) == 0 || args[0] == stdioPath {
		if env.Stdin == nil {
			return nil, ErrNoInput
		}
		content, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return &source{content: content}, nil
	}

	path := args[0]
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return &source{path: path, dir: filepath.Dir(abs), content: content}, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
// Files are replaced atomically.
func writeOutput(path string, data []byte, env *Environment) error {
	if path == "" || path == stdioPath {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
