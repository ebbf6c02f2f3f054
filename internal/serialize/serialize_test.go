package serialize

// Notes:
// - Trees are built by hand here; parse/serialize round trips live in the
//   root package tests where the parser is available.

import (
	"testing"

	"github.com/alnah/go-mdtree/internal/doctree"
)

func text(s string, marks ...doctree.Mark) *doctree.Node {
	return doctree.NewText(s, marks...)
}

func para(inlines ...*doctree.Node) *doctree.Node {
	return doctree.NewParagraph(inlines...)
}

func withAttrs(n *doctree.Node, attrs doctree.Attrs) *doctree.Node {
	n.Attrs = attrs
	return n
}

var (
	bold      = doctree.NewMark(doctree.MarkBold)
	italic    = doctree.NewMark(doctree.MarkItalic)
	strike    = doctree.NewMark(doctree.MarkStrike)
	code      = doctree.NewMark(doctree.MarkCode)
	underline = doctree.NewMark(doctree.MarkUnderline)
	c1        = doctree.CommentMark("c1")
)

// ---------------------------------------------------------------------------
// TestMarkdown_Blocks - Block layout
// ---------------------------------------------------------------------------

func TestMarkdown_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *doctree.Node
		want string
	}{
		{
			name: "title and paragraph",
			doc: doctree.NewDoc(
				doctree.NewHeading(1, text("Title")),
				para(text("Hello "), text("world", bold), text(".")),
			),
			want: "# Title\n\nHello **world**.\n",
		},
		{
			name: "empty document",
			doc:  doctree.NewDoc(para()),
			want: "",
		},
		{
			name: "nil document",
			doc:  nil,
			want: "",
		},
		{
			name: "empty heading",
			doc:  doctree.NewDoc(doctree.NewHeading(3)),
			want: "###\n",
		},
		{
			name: "frontmatter",
			doc: doctree.NewDoc(
				doctree.NewFrontmatter("title: x"),
				doctree.NewHeading(1, text("H")),
			),
			want: "---\ntitle: x\n---\n\n# H\n",
		},
		{
			name: "thematic break at start",
			doc:  doctree.NewDoc(doctree.NewThematicBreak(), para(text("a"))),
			want: "***\n\na\n",
		},
		{
			name: "thematic break after frontmatter",
			doc:  doctree.NewDoc(doctree.NewFrontmatter("a: 1"), doctree.NewThematicBreak()),
			want: "---\na: 1\n---\n\n---\n",
		},
		{
			name: "code block grows fence",
			doc:  doctree.NewDoc(doctree.NewCodeBlock("go", "a ``` b")),
			want: "````go\na ``` b\n````\n",
		},
		{
			name: "code block with meta",
			doc: doctree.NewDoc(withAttrs(doctree.NewCodeBlock("", "x"), doctree.Attrs{
				doctree.AttrLanguage: "js",
				doctree.AttrMeta:     "title=a",
			})),
			want: "```js title=a\nx\n```\n",
		},
		{
			name: "empty code block",
			doc:  doctree.NewDoc(doctree.NewCodeBlock("", "")),
			want: "```\n```\n",
		},
		{
			name: "mermaid",
			doc:  doctree.NewDoc(doctree.NewMermaidBlock("graph TD\n  A-->B")),
			want: "```mermaid\ngraph TD\n  A-->B\n```\n",
		},
		{
			name: "math block",
			doc:  doctree.NewDoc(doctree.NewMathBlock("E=mc^2")),
			want: "$$\nE=mc^2\n$$\n",
		},
		{
			name: "blockquote",
			doc:  doctree.NewDoc(doctree.NewBlockquote(para(text("a")), para(text("b")))),
			want: "> a\n>\n> b\n",
		},
		{
			name: "crlf",
			doc: withAttrs(doctree.NewDoc(para(text("a\nb"))),
				doctree.Attrs{doctree.AttrLineEnding: "\r\n"}),
			want: "a\r\nb\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Markdown(tt.doc, Options{}); got != tt.want {
				t.Errorf("Markdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdown_Lists - Markers, indentation and spacing
// ---------------------------------------------------------------------------

func TestMarkdown_Lists(t *testing.T) {
	t.Parallel()

	item := func(s string) *doctree.Node { return doctree.NewListItem(para(text(s))) }
	bullets := func(items ...*doctree.Node) *doctree.Node {
		return doctree.NewList(doctree.TypeBulletList, items...)
	}

	tests := []struct {
		name string
		doc  *doctree.Node
		want string
	}{
		{
			name: "tight bullets",
			doc:  doctree.NewDoc(bullets(item("a"), item("b"))),
			want: "- a\n- b\n",
		},
		{
			name: "loose bullets",
			doc: doctree.NewDoc(withAttrs(bullets(item("a"), item("b")),
				doctree.Attrs{doctree.AttrTight: false})),
			want: "- a\n\n- b\n",
		},
		{
			name: "nested",
			doc: doctree.NewDoc(bullets(
				doctree.NewListItem(para(text("a")), bullets(item("b"))),
			)),
			want: "- a\n  - b\n",
		},
		{
			name: "ordered with start",
			doc: doctree.NewDoc(withAttrs(doctree.NewList(doctree.TypeOrderedList, item("a"), item("b")),
				doctree.Attrs{doctree.AttrStart: 3})),
			want: "3. a\n4. b\n",
		},
		{
			name: "ordered indents by marker width",
			doc: doctree.NewDoc(doctree.NewList(doctree.TypeOrderedList,
				doctree.NewListItem(para(text("a")), bullets(item("b"))),
			)),
			want: "1. a\n   - b\n",
		},
		{
			name: "tasks",
			doc: doctree.NewDoc(doctree.NewList(doctree.TypeTaskList,
				doctree.NewTaskItem(false, para(text("a"))),
				doctree.NewTaskItem(true, para(text("b"))),
				item("c"),
			)),
			want: "- [ ] a\n- [x] b\n- c\n",
		},
		{
			name: "ordered tasks",
			doc: doctree.NewDoc(withAttrs(doctree.NewList(doctree.TypeTaskList,
				doctree.NewTaskItem(true, para(text("a"))),
			), doctree.Attrs{doctree.AttrOrdered: true, doctree.AttrStart: 1})),
			want: "1. [x] a\n",
		},
		{
			name: "empty item",
			doc:  doctree.NewDoc(bullets(doctree.NewListItem(), item("b"))),
			want: "-\n- b\n",
		},
		{
			name: "code inside tight item",
			doc: doctree.NewDoc(bullets(
				doctree.NewListItem(para(text("a")), doctree.NewCodeBlock("", "x\n\ny")),
			)),
			want: "- a\n  ```\n  x\n\n  y\n  ```\n",
		},
		{
			name: "rule after paragraph in tight item",
			doc: doctree.NewDoc(bullets(
				doctree.NewListItem(para(text("a")), doctree.NewThematicBreak()),
			)),
			want: "- a\n  ***\n",
		},
		{
			name: "adjacent lists alternate markers",
			doc:  doctree.NewDoc(bullets(item("a")), bullets(item("b")), bullets(item("c"))),
			want: "- a\n\n* b\n\n- c\n",
		},
		{
			name: "adjacent ordered lists",
			doc: doctree.NewDoc(
				doctree.NewList(doctree.TypeOrderedList, item("a")),
				doctree.NewList(doctree.TypeOrderedList, item("b")),
			),
			want: "1. a\n\n1) b\n",
		},
		{
			name: "list in blockquote",
			doc:  doctree.NewDoc(doctree.NewBlockquote(bullets(item("a"), item("b")))),
			want: "> - a\n> - b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Markdown(tt.doc, Options{}); got != tt.want {
				t.Errorf("Markdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdown_Table - Padding and delimiter row
// ---------------------------------------------------------------------------

func TestMarkdown_Table(t *testing.T) {
	t.Parallel()

	row := func(header bool, cells ...string) *doctree.Node {
		nodes := make([]*doctree.Node, len(cells))
		for i, c := range cells {
			if c == "" {
				nodes[i] = doctree.NewTableCell(header)
				continue
			}
			nodes[i] = doctree.NewTableCell(header, text(c))
		}
		return doctree.NewTableRow(nodes...)
	}

	tests := []struct {
		name  string
		table *doctree.Node
		want  string
	}{
		{
			name: "short row padded",
			table: doctree.NewTable(
				row(true, "a", "b", "c"),
				row(false, "1", "2"),
			),
			want: "| a | b | c |\n| --- | --- | --- |\n| 1 | 2 |  |\n",
		},
		{
			name: "alignment",
			table: withAttrs(doctree.NewTable(
				row(true, "a", "b", "c"),
			), doctree.Attrs{doctree.AttrAlign: []any{"left", "", "right"}}),
			want: "| a | b | c |\n| :--- | --- | ---: |\n",
		},
		{
			name: "pipe in code is escaped",
			table: doctree.NewTable(doctree.NewTableRow(
				doctree.NewTableCell(true, text("a|b", code)),
			)),
			want: "| `a\\|b` |\n| --- |\n",
		},
		{
			name:  "no cells",
			table: doctree.NewTable(doctree.NewTableRow()),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Markdown(doctree.NewDoc(tt.table), Options{}); got != tt.want {
				t.Errorf("Markdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdown_Inline - Marks and inline leaves
// ---------------------------------------------------------------------------

func TestMarkdown_Inline(t *testing.T) {
	t.Parallel()

	link := doctree.LinkMark("http://x", "T", false)

	tests := []struct {
		name    string
		inlines []*doctree.Node
		want    string
	}{
		{
			name:    "comment marker",
			inlines: []*doctree.Node{text("Some text with "), text("highlighted", c1), text(" content.")},
			want:    "Some text with <mark>highlighted</mark><sup>[c1]</sup> content.",
		},
		{
			name:    "marker spans emphasis",
			inlines: []*doctree.Node{text("b", bold, c1), text(" c", c1)},
			want:    "<mark>**b** c</mark><sup>[c1]</sup>",
		},
		{
			name:    "empty marker",
			inlines: []*doctree.Node{text("a"), text("", c1), text("b")},
			want:    "a<mark></mark><sup>[c1]</sup>b",
		},
		{
			name:    "marker inside link",
			inlines: []*doctree.Node{text("a", link, c1)},
			want:    `[<mark>a</mark><sup>[c1]</sup>](http://x "T")`,
		},
		{
			name:    "link with title",
			inlines: []*doctree.Node{text("t", link)},
			want:    `[t](http://x "T")`,
		},
		{
			name:    "link destination with spaces",
			inlines: []*doctree.Node{text("t", doctree.LinkMark("a b.md", "", false))},
			want:    "[t](<a b.md>)",
		},
		{
			name:    "autolink",
			inlines: []*doctree.Node{text("http://x", doctree.LinkMark("http://x", "", true))},
			want:    "<http://x>",
		},
		{
			name:    "bold and italic on one leaf",
			inlines: []*doctree.Node{text("x", italic, bold)},
			want:    "***x***",
		},
		{
			name:    "italic spanning bold",
			inlines: []*doctree.Node{text("a ", italic), text("b", bold, italic)},
			want:    "*a **b***",
		},
		{
			name:    "trailing space moves outside",
			inlines: []*doctree.Node{text("a ", bold), text("b")},
			want:    "**a** b",
		},
		{
			name:    "leading space moves outside",
			inlines: []*doctree.Node{text("a"), text(" b", italic)},
			want:    "a *b*",
		},
		{
			name:    "blank emphasis dropped",
			inlines: []*doctree.Node{text("a"), text(" ", bold), text("b")},
			want:    "a b",
		},
		{
			name:    "strike and underline",
			inlines: []*doctree.Node{text("s", strike), text(" "), text("u", underline)},
			want:    "~~s~~ <u>u</u>",
		},
		{
			name:    "code",
			inlines: []*doctree.Node{text("x", code)},
			want:    "`x`",
		},
		{
			name:    "code with backtick",
			inlines: []*doctree.Node{text("a`b", code)},
			want:    "``a`b``",
		},
		{
			name:    "code starting with backtick",
			inlines: []*doctree.Node{text("`x", code)},
			want:    "`` `x ``",
		},
		{
			name:    "bold code",
			inlines: []*doctree.Node{text("x", code, bold)},
			want:    "**`x`**",
		},
		{
			name:    "hard break",
			inlines: []*doctree.Node{text("a"), doctree.NewHardBreak(), text("b")},
			want:    "a  \nb",
		},
		{
			name:    "inline math",
			inlines: []*doctree.Node{text("so "), doctree.NewMathInline("x^2")},
			want:    "so $x^2$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Markdown(doctree.NewDoc(para(tt.inlines...)), Options{})
			if want := tt.want + "\n"; got != want {
				t.Errorf("Markdown() = %q, want %q", got, want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdown_Images - Literal and resolved sources
// ---------------------------------------------------------------------------

func TestMarkdown_Images(t *testing.T) {
	t.Parallel()

	image := func(attrs doctree.Attrs) *doctree.Node {
		n := doctree.NewImage("", "", "")
		for k, v := range attrs {
			n.Attrs[k] = v
		}
		return n
	}

	tests := []struct {
		name string
		img  *doctree.Node
		opts Options
		want string
	}{
		{
			name: "original source wins",
			img: image(doctree.Attrs{
				doctree.AttrSrc:         "file:///ws/img/a%20b.png",
				doctree.AttrOriginalSrc: "img/a%20b.png",
				doctree.AttrAlt:         "x",
			}),
			want: "![x](img/a%20b.png)",
		},
		{
			name: "pointy destination",
			img: image(doctree.Attrs{
				doctree.AttrSrc:         "file:///ws/my%20pic.png",
				doctree.AttrOriginalSrc: "my pic.png",
			}),
			want: "![](<my pic.png>)",
		},
		{
			name: "file url without original",
			img:  image(doctree.Attrs{doctree.AttrSrc: "file:///ws/a.png"}),
			want: "![](/ws/a.png)",
		},
		{
			name: "remote with title",
			img: image(doctree.Attrs{
				doctree.AttrSrc:   "https://e.com/a.png",
				doctree.AttrAlt:   "x",
				doctree.AttrTitle: `say "hi"`,
			}),
			want: `![x](https://e.com/a.png 'say "hi"')`,
		},
		{
			name: "wiki with alt",
			img: image(doctree.Attrs{
				doctree.AttrSrc:         "file:///ws/pic.png",
				doctree.AttrOriginalSrc: "pic.png",
				doctree.AttrAlt:         "A pic",
				doctree.AttrWikiEmbed:   true,
			}),
			want: "![[pic.png|A pic]]",
		},
		{
			name: "wiki without alt",
			img: image(doctree.Attrs{
				doctree.AttrSrc:       "pic.png",
				doctree.AttrWikiEmbed: true,
			}),
			want: "![[pic.png]]",
		},
		{
			name: "resolved for export",
			img: image(doctree.Attrs{
				doctree.AttrSrc:         "file:///ws/pic.png",
				doctree.AttrOriginalSrc: "pic.png",
				doctree.AttrFilePath:    "/ws/pic.png",
				doctree.AttrAlt:         "A pic",
				doctree.AttrWikiEmbed:   true,
			}),
			opts: Options{ResolvedImages: true},
			want: "![A pic](/ws/pic.png)",
		},
		{
			name: "resolved without file path",
			img: image(doctree.Attrs{
				doctree.AttrSrc:         "https://e.com/a.png",
				doctree.AttrOriginalSrc: "https://e.com/a.png",
			}),
			opts: Options{ResolvedImages: true},
			want: "![](https://e.com/a.png)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Markdown(doctree.NewDoc(para(tt.img)), tt.opts)
			if want := tt.want + "\n"; got != want {
				t.Errorf("Markdown() = %q, want %q", got, want)
			}
		})
	}
}
