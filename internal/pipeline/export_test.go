package pipeline

// Notes:
// - RewriteRelativePaths is tested through its public API; error branches in
//   parseHTML/renderHTML are not reachable with well-formed input.
// - Path traversal tests check the observable result (path left alone).
// - GoldmarkConverter is tested for the markup this project relies on
//   (tables, task lists, highlighting classes, no raw HTML), not for goldmark
//   rendering rules in general.

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func testSourceDir() string {
	if runtime.GOOS == "windows" {
		return `C:\notes`
	}
	return "/notes"
}

// ---------------------------------------------------------------------------
// TestInjectCSS - Stylesheet injection
// ---------------------------------------------------------------------------

func TestEscapeStyleText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"body { color: red; }", "body { color: red; }"},
		{"</style>", `<\/style>`},
		{"</a></B>", `<\/a><\/B>`},
	}

	for _, tt := range tests {
		if got := escapeStyleText(tt.input); got != tt.want {
			t.Errorf("escapeStyleText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStyleAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page string
		want int
	}{
		{"head wins over body", "<head></head><body>", len("<head>")},
		{"body with attributes", `<body lang="en">x`, len(`<body lang="en">`)},
		{"unterminated body tag", "<body", 0},
		{"fragment", "<p>a</p>", 0},
		{"empty page", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := styleAnchor(tt.page); got != tt.want {
				t.Errorf("styleAnchor(%q) = %d, want %d", tt.page, got, tt.want)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	injector := &CSSInjection{}
	css := "mark { background: yellow; }"

	tests := []struct {
		name string
		html string
		want string
	}{
		{"before head close", "<html><head></head><body></body></html>", "<html><head><style>" + css + "</style></head><body></body></html>"},
		{"after body open", `<body class="x"><p>a</p></body>`, `<body class="x"><style>` + css + `</style><p>a</p></body>`},
		{"prepended to fragment", "<p>a</p>", "<style>" + css + "</style><p>a</p>"},
		{"uppercase head", "<HEAD></HEAD>", "<HEAD><style>" + css + "</style></HEAD>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := injector.InjectCSS(context.Background(), tt.html, css); got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := injector.InjectCSS(context.Background(), "<p>a</p>", ""); got != "<p>a</p>" {
		t.Errorf("InjectCSS with empty CSS = %q, want unchanged", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := injector.InjectCSS(ctx, "<p>a</p>", css); got != "<p>a</p>" {
		t.Errorf("InjectCSS with cancelled context = %q, want unchanged", got)
	}
}

// ---------------------------------------------------------------------------
// TestMarkersToPlaceholders - Comment markers in exported HTML
// ---------------------------------------------------------------------------

func TestMarkersToPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no html", "plain text", "plain text"},
		{"comment marker", "a <mark>b</mark><sup>[c3]</sup> c", "a <mark>b</mark> c"},
		{"bare mark", "<mark>b</mark>", "<mark>b</mark>"},
		{"underline", "<u>u</u>", "<u>u</u>"},
		{"two markers", "<mark>a</mark><sup>[c1]</sup><mark>b</mark><sup>[c2]</sup>", "<mark>a</mark><mark>b</mark>"},
		{"unclosed mark untouched", "<mark>a", "<mark>a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConvertMarkPlaceholders(MarkersToPlaceholders(tt.input))
			if got != tt.want {
				t.Errorf("round trip = %q, want %q", got, tt.want)
			}
		})
	}

	if got := MarkersToPlaceholders("<mark>x</mark><sup>[c1]</sup>"); strings.Contains(got, "<") {
		t.Errorf("MarkersToPlaceholders left tags behind: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter - Markdown to HTML
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name         string
		markdown     string
		title        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "document wrapper and title",
			markdown:     "# Title",
			title:        "My <Notes>",
			wantContains: []string{"<!DOCTYPE html>", "<title>My &lt;Notes&gt;</title>", `<h1 id="title">Title</h1>`},
		},
		{
			name:         "default title",
			markdown:     "text",
			wantContains: []string{"<title>Document</title>"},
		},
		{
			name:         "table",
			markdown:     "| a | b |\n| --- | --- |\n| 1 | 2 |",
			wantContains: []string{"<table>", "<th>a</th>", "<td>2</td>"},
		},
		{
			name:         "task list",
			markdown:     "- [x] done",
			wantContains: []string{`<input checked="" disabled="" type="checkbox" />`},
		},
		{
			name:         "highlighted code uses classes",
			markdown:     "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
			wantExcludes: []string{"style=\"color"},
		},
		{
			name:         "raw html omitted",
			markdown:     "<script>alert(1)</script>",
			wantExcludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown, tt.title)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q in:\n%s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ToHTML() should not contain %q in:\n%s", exclude, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# x", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestRewriteRelativePaths - file:// rewriting for exported HTML
// ---------------------------------------------------------------------------

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	sourceDir := testSourceDir()

	tests := []struct {
		name         string
		html         string
		sourceDir    string
		wantContains string
	}{
		{"relative image with dot slash", `<img src="./images/logo.png">`, sourceDir, `src="file://`},
		{"relative image without dot slash", `<img src="images/logo.png">`, sourceDir, `src="file://`},
		{"relative link", `<a href="other.md">x</a>`, sourceDir, `href="file://`},
		{"absolute path unchanged", `<img src="/abs/logo.png">`, sourceDir, `src="/abs/logo.png"`},
		{"https unchanged", `<img src="https://example.com/a.png">`, sourceDir, `src="https://example.com/a.png"`},
		{"data URI unchanged", `<img src="data:image/png;base64,AAA">`, sourceDir, `src="data:image/png;base64,AAA"`},
		{"mailto unchanged", `<a href="mailto:me@example.com">m</a>`, sourceDir, `href="mailto:me@example.com"`},
		{"anchor unchanged", `<a href="#top">t</a>`, sourceDir, `href="#top"`},
		{"protocol relative unchanged", `<img src="//cdn.example.com/a.png">`, sourceDir, `src="//cdn.example.com/a.png"`},
		{"script not rewritten", `<script src="./a.js"></script>`, sourceDir, `src="./a.js"`},
		{"empty source dir", `<img src="./a.png">`, "", `src="./a.png"`},
		{"traversal blocked", `<img src="../../etc/passwd">`, sourceDir, `src="../../etc/passwd"`},
		{"percent encoded path decoded once", `<img src="my%20images/a.png">`, sourceDir, `my%20images/a.png`},
		{"spaces encoded", `<img src="./my images/a.png">`, sourceDir, `my%20images`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("RewriteRelativePaths() = %q, want to contain %q", got, tt.wantContains)
			}
		})
	}
}

func TestRewriteRelativePaths_FullDocument(t *testing.T) {
	t.Parallel()

	doc := "<!DOCTYPE html>\n<html><head><title>T</title></head><body><img src=\"./a.png\"></body></html>"
	got, err := RewriteRelativePaths(doc, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if !strings.Contains(strings.ToLower(got), "<!doctype html>") {
		t.Error("full document should keep its doctype")
	}
	if !strings.Contains(got, `src="file://`) {
		t.Errorf("image not rewritten: %s", got)
	}
}

func TestRewriteRelativePaths_Fragment(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<p>Hi</p><img src="a.png">`, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if strings.Contains(got, "<html>") || !strings.Contains(got, "<p>Hi</p>") {
		t.Errorf("fragment structure changed: %s", got)
	}
}

// ---------------------------------------------------------------------------
// TestFileURL - Path and URL conversion
// ---------------------------------------------------------------------------

func TestPathToFileURL_RoundTrip(t *testing.T) {
	t.Parallel()

	path := "/notes/img/a b.png"
	if runtime.GOOS == "windows" {
		path = `C:\notes\img\a b.png`
	}

	u := PathToFileURL(path)
	if !strings.HasPrefix(u, "file:///") {
		t.Fatalf("PathToFileURL(%q) = %q, want file:/// prefix", path, u)
	}
	if !strings.Contains(u, "a%20b.png") {
		t.Errorf("PathToFileURL(%q) = %q, want escaped space", path, u)
	}

	back, ok := FileURLToPath(u)
	if !ok || back != path {
		t.Errorf("FileURLToPath(%q) = %q, %v; want %q, true", u, back, ok, path)
	}

	if _, ok := FileURLToPath("https://example.com/a.png"); ok {
		t.Error("FileURLToPath accepted a non-file URL")
	}
}
