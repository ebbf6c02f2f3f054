package pipeline

// Notes:
// - Preprocess is tested end to end on small documents; the expected body is
//   what goldmark will see, so sentinels and canonical image syntax appear
//   verbatim in the expectations.
// - codeRegions is covered indirectly: every "unchanged" case below only
//   holds because the code region was skipped.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPreprocessor() *Preprocessor {
	return NewPreprocessor(NewMarkdown(), nil)
}

// ---------------------------------------------------------------------------
// TestExtractFrontmatter - Leading --- fence
// ---------------------------------------------------------------------------

func TestExtractFrontmatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantFM   string
		wantOK   bool
		wantRest string
	}{
		{"simple", "---\ntitle: x\n---\n# H", "title: x", true, "# H"},
		{"no trailing newline", "---\na: 1\n---", "a: 1", true, ""},
		{"multi line", "---\na: 1\nb: 2\n---\n\nbody", "a: 1\nb: 2", true, "\nbody"},
		{"first closing fence wins", "---\na\n---\nb\n---\nc", "a", true, "b\n---\nc"},
		{"unterminated", "---\ntitle: x\n", "", false, "---\ntitle: x\n"},
		{"not at start", "text\n---\na\n---\n", "", false, "text\n---\na\n---\n"},
		{"empty fence pair", "---\n---\n", "", false, "---\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, rest, ok := ExtractFrontmatter(tt.input)
			if ok != tt.wantOK || fm != tt.wantFM || rest != tt.wantRest {
				t.Errorf("ExtractFrontmatter(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, fm, rest, ok, tt.wantFM, tt.wantRest, tt.wantOK)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPreprocess_Math - $$ block extraction
// ---------------------------------------------------------------------------

func TestPreprocess_Math(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantBody  string
		wantLatex []string
	}{
		{
			name:      "standalone block",
			input:     "$$\nE=mc^2\n$$",
			wantBody:  "MATH_BLOCK_0",
			wantLatex: []string{"E=mc^2"},
		},
		{
			name:      "single line between paragraphs",
			input:     "a\n\n$$x$$\n\nb",
			wantBody:  "a\n\nMATH_BLOCK_0\n\nb",
			wantLatex: []string{"x"},
		},
		{
			name:      "counter increases",
			input:     "$$a$$\n\n$$b$$",
			wantBody:  "MATH_BLOCK_0\n\nMATH_BLOCK_1",
			wantLatex: []string{"a", "b"},
		},
		{
			name:      "inside blockquote",
			input:     "> $$\n> a\n>\n> b\n> $$",
			wantBody:  "> MATH_BLOCK_0",
			wantLatex: []string{"a\n\nb"},
		},
		{
			name:      "inside list item",
			input:     "- $$\n  a\n  b\n  $$",
			wantBody:  "- MATH_BLOCK_0",
			wantLatex: []string{"a\nb"},
		},
		{
			name:      "inside ordered list item",
			input:     "1. $$\n   a\n   $$",
			wantBody:  "1. MATH_BLOCK_0",
			wantLatex: []string{"a"},
		},
		{
			name:     "inline in sentence stays literal",
			input:    "cost $$5 and $$6",
			wantBody: "cost $$5 and $$6",
		},
		{
			name:     "trailing text stays literal",
			input:    "$$x$$ tail",
			wantBody: "$$x$$ tail",
		},
		{
			name:     "unclosed",
			input:    "$$ unclosed",
			wantBody: "$$ unclosed",
		},
		{
			name:     "inside fenced code",
			input:    "```\n$$x$$\n```",
			wantBody: "```\n$$x$$\n```",
		},
		{
			name:     "inside code span",
			input:    "`$$x$$`",
			wantBody: "`$$x$$`",
		},
		{
			name:      "after fenced code holding a delimiter",
			input:     "```\n$$\n```\n\n$$y$$",
			wantBody:  "```\n$$\n```\n\nMATH_BLOCK_0",
			wantLatex: []string{"y"},
		},
		{
			name:     "single dollars untouched",
			input:    "$x$ and $y$",
			wantBody: "$x$ and $y$",
		},
	}

	p := newTestPreprocessor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := p.Preprocess(tt.input)
			if got := string(src.Body); got != tt.wantBody {
				t.Errorf("Body = %q, want %q", got, tt.wantBody)
			}
			if src.Math.Len() != len(tt.wantLatex) {
				t.Fatalf("Math.Len() = %d, want %d", src.Math.Len(), len(tt.wantLatex))
			}
			for i, want := range tt.wantLatex {
				sentinel := MathSentinelPrefix + string(rune('0'+i))
				b, ok := src.Math.Lookup(sentinel)
				if !ok {
					t.Fatalf("Lookup(%q) missing", sentinel)
				}
				if b.Latex != want {
					t.Errorf("Lookup(%q).Latex = %q, want %q", sentinel, b.Latex, want)
				}
			}
		})
	}
}

func TestMathIndex_Restore(t *testing.T) {
	t.Parallel()

	src := newTestPreprocessor().Preprocess("text\n$$\na\n$$")
	if got := string(src.Body); got != "text\nMATH_BLOCK_0" {
		t.Fatalf("Body = %q", got)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"text\nMATH_BLOCK_0", "text\n$$\na\n$$"},
		{"MATH_BLOCK_7 unknown", "MATH_BLOCK_7 unknown"},
		{"nothing here", "nothing here"},
	}
	for _, tt := range tests {
		if got := src.Math.Restore(tt.input); got != tt.want {
			t.Errorf("Restore(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	var nilIndex *MathIndex
	if got := nilIndex.Restore("MATH_BLOCK_0"); got != "MATH_BLOCK_0" {
		t.Errorf("nil Restore = %q", got)
	}
}

func TestPreprocess_MathLiteralSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantBody     string
		wantSentinel string
	}{
		{
			name:         "literal after block",
			input:        "$$\na\n$$\n\nMATH_BLOCK_0",
			wantBody:     "MATH_BLOCK_1\n\nMATH_BLOCK_0",
			wantSentinel: "MATH_BLOCK_1",
		},
		{
			name:         "highest literal wins",
			input:        "MATH_BLOCK_4 and MATH_BLOCK_2\n\n$$x$$",
			wantBody:     "MATH_BLOCK_4 and MATH_BLOCK_2\n\nMATH_BLOCK_5",
			wantSentinel: "MATH_BLOCK_5",
		},
		{
			name:         "oversized literal ignored",
			input:        "MATH_BLOCK_99999999999999999999\n\n$$x$$",
			wantBody:     "MATH_BLOCK_99999999999999999999\n\nMATH_BLOCK_0",
			wantSentinel: "MATH_BLOCK_0",
		},
	}

	p := newTestPreprocessor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := p.Preprocess(tt.input)
			if got := string(src.Body); got != tt.wantBody {
				t.Errorf("Body = %q, want %q", got, tt.wantBody)
			}
			if _, ok := src.Math.Lookup(tt.wantSentinel); !ok {
				t.Errorf("Lookup(%q) missing", tt.wantSentinel)
			}
			if src.Math.Len() != 1 {
				t.Errorf("Math.Len() = %d, want 1", src.Math.Len())
			}
			if got := src.Math.Restore("MATH_BLOCK_0"); tt.wantSentinel != "MATH_BLOCK_0" && got != "MATH_BLOCK_0" {
				t.Errorf("literal token restored to %q", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPreprocess_WikiEmbed - ![[target]] normalization
// ---------------------------------------------------------------------------

func TestPreprocess_WikiEmbed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"image", "![[a.png]]", "![](<a.png#wiki-embed>)"},
		{"image with alt", "![[img/a b.jpg|A cat]]", "![A cat](<img/a b.jpg#wiki-embed>)"},
		{"uppercase extension", "![[A.PNG]]", "![](<A.PNG#wiki-embed>)"},
		{"inside sentence", "see ![[a.gif]] here", "see ![](<a.gif#wiki-embed>) here"},
		{"note embed untouched", "![[Meeting notes]]", "![[Meeting notes]]"},
		{"pdf embed untouched", "![[doc.pdf]]", "![[doc.pdf]]"},
		{"plain wiki link untouched", "[[a.png]]", "[[a.png]]"},
		{"inside code span", "`![[a.png]]`", "`![[a.png]]`"},
		{"inside fenced code", "~~~\n![[a.png]]\n~~~", "~~~\n![[a.png]]\n~~~"},
		{"empty target", "![[|alt]]", "![[|alt]]"},
	}

	p := newTestPreprocessor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := string(p.Preprocess(tt.input).Body); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewExtensionSet(t *testing.T) {
	t.Parallel()

	set := NewExtensionSet([]string{"PNG", ".Jpg", " ", "webp"})
	want := ExtensionSet{".png": true, ".jpg": true, ".webp": true}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("NewExtensionSet mismatch (-want +got):\n%s", diff)
	}
	if !set.IsImage("dir/photo.JPG") || set.IsImage("notes.md") {
		t.Error("IsImage gave the wrong answer")
	}
}

// ---------------------------------------------------------------------------
// TestPreprocess_LineEndings - CRLF handling
// ---------------------------------------------------------------------------

func TestPreprocess_LineEndings(t *testing.T) {
	t.Parallel()

	p := newTestPreprocessor()

	src := p.Preprocess("---\r\na: 1\r\n---\r\n# A\r\n\r\nb\r\n")
	if src.LineEnding != LineEndingCRLF {
		t.Errorf("LineEnding = %q, want CRLF", src.LineEnding)
	}
	if !src.HasFrontmatter || src.Frontmatter != "a: 1" {
		t.Errorf("Frontmatter = %q (has=%v), want %q", src.Frontmatter, src.HasFrontmatter, "a: 1")
	}
	if got := string(src.Body); got != "# A\n\nb\n" {
		t.Errorf("Body = %q", got)
	}

	if got := p.Preprocess("a\rb").LineEnding; got != LineEndingLF {
		t.Errorf("lone CR LineEnding = %q, want LF", got)
	}
	if got := ApplyLineEnding("a\nb\n", LineEndingCRLF); got != "a\r\nb\r\n" {
		t.Errorf("ApplyLineEnding = %q", got)
	}
	if got := ApplyLineEnding("a\nb", LineEndingLF); got != "a\nb" {
		t.Errorf("ApplyLineEnding LF = %q", got)
	}
}
