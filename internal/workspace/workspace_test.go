package workspace

// Notes:
// - Trees are built under t.TempDir; expected paths use filepath.Join so
//   the tests hold on every platform.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return root
}

// ---------------------------------------------------------------------------
// TestMapIndex - Fixed lookups
// ---------------------------------------------------------------------------

func TestMapIndex(t *testing.T) {
	t.Parallel()

	idx := MapIndex{"pic.png": "/ws/img/pic.png"}

	if p, ok := idx.Lookup("pic.png"); !ok || p != "/ws/img/pic.png" {
		t.Errorf("Lookup(pic.png) = %q, %v", p, ok)
	}
	if _, ok := idx.Lookup("other.png"); ok {
		t.Error("Lookup(other.png) found a path")
	}
	if _, ok := MapIndex(nil).Lookup("pic.png"); ok {
		t.Error("nil MapIndex found a path")
	}
}

// ---------------------------------------------------------------------------
// TestScan - Directory walk
// ---------------------------------------------------------------------------

func TestScan(t *testing.T) {
	t.Parallel()

	root := buildTree(t,
		"a.md",
		"assets/pic.png",
		"assets/Diagram.SVG",
		"notes/b.markdown",
		"notes/deep/pic.png",
		".git/config.md",
		".obsidian/hidden.png",
		"node_modules/pkg/readme.md",
	)

	idx, err := Scan(context.Background(), root, ScanOptions{Exclude: []string{"node_modules"}})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if idx.Root() != root {
		t.Errorf("Root() = %q, want %q", idx.Root(), root)
	}
	if idx.Len() != 5 {
		t.Errorf("Len() = %d, want 5", idx.Len())
	}

	tests := []struct {
		name   string
		lookup string
		want   string
		wantOK bool
	}{
		{"first in walk order wins", "pic.png", filepath.Join(root, "assets", "pic.png"), true},
		{"case-insensitive fallback", "diagram.svg", filepath.Join(root, "assets", "Diagram.SVG"), true},
		{"exact case", "Diagram.SVG", filepath.Join(root, "assets", "Diagram.SVG"), true},
		{"hidden directory skipped", "hidden.png", "", false},
		{"excluded directory skipped", "readme.md", "", false},
		{"unknown", "nope.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := idx.Lookup(tt.lookup)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.lookup, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	wantMarkdown := []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "notes", "b.markdown"),
	}
	if diff := cmp.Diff(wantMarkdown, idx.Markdown()); diff != "" {
		t.Errorf("Markdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_InvalidRoot(t *testing.T) {
	t.Parallel()

	root := buildTree(t, "file.md")

	tests := []struct {
		name string
		root string
	}{
		{"missing", filepath.Join(root, "missing")},
		{"file", filepath.Join(root, "file.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Scan(context.Background(), tt.root, ScanOptions{}); !errors.Is(err, ErrInvalidRoot) {
				t.Errorf("Scan() error = %v, want ErrInvalidRoot", err)
			}
		})
	}
}

func TestScan_Canceled(t *testing.T) {
	t.Parallel()

	root := buildTree(t, "a.md", "b.md")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, root, ScanOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
}

func TestExcluded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		want     bool
	}{
		{".trash", nil, true},
		{"build", []string{"bu*"}, true},
		{"docs", []string{"bu*"}, false},
		{"docs", []string{"[bad"}, false},
	}

	for _, tt := range tests {
		if got := Excluded(tt.name, tt.patterns); got != tt.want {
			t.Errorf("Excluded(%q, %v) = %v, want %v", tt.name, tt.patterns, got, tt.want)
		}
	}
}
