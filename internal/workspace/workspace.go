// Package workspace builds the name index the image resolver searches for
// wiki embeds and relative images.
//
// The converter itself never touches the disk. Callers that own a workspace
// scan it once with Scan and hand the Index to every parse.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-mdtree/internal/convert"
	"github.com/alnah/go-mdtree/internal/fileutil"
)

// ErrInvalidRoot indicates the workspace root is not a readable directory.
var ErrInvalidRoot = errors.New("invalid workspace root")

// MapIndex is a FileIndex backed by a fixed name to path map.
type MapIndex map[string]string

// Lookup returns the path recorded for name.
func (m MapIndex) Lookup(name string) (string, bool) {
	p, ok := m[name]
	return p, ok
}

// ScanOptions controls which entries Scan records.
type ScanOptions struct {
	// Exclude holds glob patterns matched against directory names. Matching
	// directories are skipped with their contents. Hidden directories are
	// always skipped.
	Exclude []string
}

// Index maps file base names to absolute paths under a workspace root.
// It is immutable once built and safe for concurrent lookups.
type Index struct {
	root     string
	byName   map[string]string
	byFold   map[string]string
	markdown []string
	files    int
}

// Scan walks root and indexes every regular file by base name. When two
// files share a name, the first in lexical walk order wins. Unreadable
// subdirectories are skipped; only a bad root is an error.
func Scan(ctx context.Context, root string, opts ScanOptions) (*Index, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidRoot, absRoot)
	}

	idx := &Index{
		root:   absRoot,
		byName: make(map[string]string),
		byFold: make(map[string]string),
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != absRoot && Excluded(d.Name(), opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		idx.add(d.Name(), path)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	sort.Strings(idx.markdown)
	return idx, nil
}

func (idx *Index) add(name, path string) {
	idx.files++
	if _, ok := idx.byName[name]; !ok {
		idx.byName[name] = path
	}
	folded := strings.ToLower(name)
	if _, ok := idx.byFold[folded]; !ok {
		idx.byFold[folded] = path
	}
	if fileutil.IsMarkdown(name) {
		idx.markdown = append(idx.markdown, path)
	}
}

// Lookup returns the path of the file named name. An exact match wins over
// a case-insensitive one.
func (idx *Index) Lookup(name string) (string, bool) {
	if p, ok := idx.byName[name]; ok {
		return p, true
	}
	p, ok := idx.byFold[strings.ToLower(name)]
	return p, ok
}

// Root returns the absolute workspace root.
func (idx *Index) Root() string {
	return idx.root
}

// Len returns the number of files seen, duplicates included.
func (idx *Index) Len() int {
	return idx.files
}

// Markdown returns the Markdown files of the workspace in sorted order.
func (idx *Index) Markdown() []string {
	return append([]string(nil), idx.markdown...)
}

// Excluded reports whether a directory is hidden or matches a pattern.
func Excluded(name string, patterns []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Compile-time interface checks.
var (
	_ convert.FileIndex = MapIndex(nil)
	_ convert.FileIndex = (*Index)(nil)
)
