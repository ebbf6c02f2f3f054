package serialize

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/pipeline"
)

// leaf is an inline node with the marks it is written with. Code is kept
// apart because it changes how the content is written rather than adding
// delimiters around it.
type leaf struct {
	node  *doctree.Node
	marks []doctree.Mark
	code  bool
}

// inlineWriter writes a run of inline nodes, keeping marks open across
// neighbouring leaves that share them.
type inlineWriter struct {
	s       *serializer
	b       strings.Builder
	open    []doctree.Mark
	pending string // whitespace held back until emphasis closes
	inTable bool
}

// inline serializes a paragraph, heading or cell's inline content.
func (s *serializer) inline(nodes []*doctree.Node, inTable bool) string {
	leaves := prepare(nodes)
	w := &inlineWriter{s: s, inTable: inTable}
	for i := range leaves {
		w.write(leaves, i)
	}
	w.closeFrom(0)
	w.flush()
	return w.b.String()
}

// prepare drops leaves that would write nothing and computes the marks
// each remaining leaf is written with.
func prepare(nodes []*doctree.Node) []leaf {
	leaves := make([]leaf, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == doctree.TypeText && n.Text == "" &&
			!n.HasMark(doctree.MarkComment) && !n.HasMark(doctree.MarkLink) {
			continue
		}
		l := leaf{node: n}
		blank := n.Type == doctree.TypeText && strings.TrimSpace(n.Text) == ""
		seen := make(map[string]bool, len(n.Marks))
		for _, m := range n.Marks {
			switch {
			case seen[m.Type]:
				continue
			case m.Type == doctree.MarkCode:
				l.code = n.Type == doctree.TypeText && n.Text != ""
			case blank && isEmphasis(m):
				// Emphasis around nothing but spaces is not emphasis.
			default:
				l.marks = append(l.marks, m)
			}
			seen[m.Type] = true
		}
		leaves = append(leaves, l)
	}
	return leaves
}

// write emits leaves[i] with its delimiters.
func (w *inlineWriter) write(leaves []leaf, i int) {
	l := leaves[i]

	keep := 0
	for keep < len(w.open) && doctree.ContainsMark(l.marks, w.open[keep]) {
		keep++
	}
	w.closeFrom(keep)
	w.flush()

	var toOpen []doctree.Mark
	for _, m := range l.marks {
		if !doctree.ContainsMark(w.open, m) {
			toOpen = append(toOpen, m)
		}
	}
	slices.SortStableFunc(toOpen, func(a, b doctree.Mark) int {
		if ra, rb := runLength(leaves, i, a), runLength(leaves, i, b); ra != rb {
			return rb - ra
		}
		return a.Rank() - b.Rank()
	})

	text := ""
	if l.node.Type == doctree.TypeText && !l.code {
		text = l.node.Text
	}
	for _, m := range toOpen {
		if isEmphasis(m) {
			// Leading spaces go before the delimiter so it can open.
			trimmed := strings.TrimLeft(text, " \t")
			w.b.WriteString(text[:len(text)-len(trimmed)])
			text = trimmed
		}
		w.b.WriteString(opener(m))
		w.open = append(w.open, m)
	}

	switch {
	case l.node.Type == doctree.TypeText && l.code:
		w.b.WriteString(codeSpan(l.node.Text, w.inTable))
	case l.node.Type == doctree.TypeText:
		if w.emphasisOpen() {
			trimmed := strings.TrimRight(text, " \t")
			w.pending = text[len(trimmed):]
			text = trimmed
		}
		w.b.WriteString(text)
	default:
		w.b.WriteString(w.s.inlineNode(l.node))
	}
}

// closeFrom closes open marks down to index keep, innermost first.
// Emphasis closes before held-back whitespace; other closers follow it.
func (w *inlineWriter) closeFrom(keep int) {
	for j := len(w.open) - 1; j >= keep; j-- {
		m := w.open[j]
		if !isEmphasis(m) {
			w.flush()
		}
		w.b.WriteString(closer(m))
	}
	w.open = w.open[:keep]
}

func (w *inlineWriter) flush() {
	w.b.WriteString(w.pending)
	w.pending = ""
}

func (w *inlineWriter) emphasisOpen() bool {
	return slices.ContainsFunc(w.open, isEmphasis)
}

// runLength counts the consecutive leaves from i that carry m.
func runLength(leaves []leaf, i int, m doctree.Mark) int {
	n := 0
	for ; i < len(leaves) && doctree.ContainsMark(leaves[i].marks, m); i++ {
		n++
	}
	return n
}

func isEmphasis(m doctree.Mark) bool {
	switch m.Type {
	case doctree.MarkBold, doctree.MarkItalic, doctree.MarkStrike:
		return true
	}
	return false
}

func opener(m doctree.Mark) string {
	switch m.Type {
	case doctree.MarkLink:
		if m.Attrs.Bool(doctree.AttrAutolink) {
			return "<"
		}
		return "["
	case doctree.MarkBold:
		return "**"
	case doctree.MarkItalic:
		return "*"
	case doctree.MarkStrike:
		return "~~"
	case doctree.MarkUnderline:
		return "<u>"
	case doctree.MarkComment:
		return "<mark>"
	}
	return ""
}

func closer(m doctree.Mark) string {
	switch m.Type {
	case doctree.MarkLink:
		if m.Attrs.Bool(doctree.AttrAutolink) {
			return ">"
		}
		return "](" + destination(m.Attrs.String(doctree.AttrHref)) +
			titleSuffix(m.Attrs.String(doctree.AttrTitle)) + ")"
	case doctree.MarkBold:
		return "**"
	case doctree.MarkItalic:
		return "*"
	case doctree.MarkStrike:
		return "~~"
	case doctree.MarkUnderline:
		return "</u>"
	case doctree.MarkComment:
		return "</mark><sup>[" + m.Attrs.String(doctree.AttrCommentID) + "]</sup>"
	}
	return ""
}

// inlineNode writes a leaf other than text.
func (s *serializer) inlineNode(n *doctree.Node) string {
	switch n.Type {
	case doctree.TypeHardBreak:
		return "  \n"
	case doctree.TypeMathInline:
		return "$" + n.Attrs.String(doctree.AttrLatex) + "$"
	case doctree.TypeImage:
		return s.image(n)
	}
	return n.TextContent()
}

// image writes an image from the text it was read from when known.
func (s *serializer) image(n *doctree.Node) string {
	alt := n.Attrs.String(doctree.AttrAlt)
	if n.Attrs.Bool(doctree.AttrWikiEmbed) && !s.opts.ResolvedImages {
		target := n.Attrs.String(doctree.AttrOriginalSrc)
		if target == "" {
			target = n.Attrs.String(doctree.AttrSrc)
		}
		if alt != "" {
			return "![[" + target + "|" + alt + "]]"
		}
		return "![[" + target + "]]"
	}
	return "![" + alt + "](" + destination(s.imageSource(n.Attrs)) +
		titleSuffix(n.Attrs.String(doctree.AttrTitle)) + ")"
}

func (s *serializer) imageSource(a doctree.Attrs) string {
	src := a.String(doctree.AttrSrc)
	if s.opts.ResolvedImages {
		if p := a.String(doctree.AttrFilePath); p != "" {
			return filepath.ToSlash(p)
		}
		return src
	}
	if orig, ok := a[doctree.AttrOriginalSrc].(string); ok {
		return orig
	}
	if p, ok := pipeline.FileURLToPath(src); ok {
		return filepath.ToSlash(p)
	}
	return src
}

// codeSpan wraps text in a backtick string longer than any run inside it,
// padding with spaces where the content would otherwise be misread.
func codeSpan(text string, inTable bool) string {
	if inTable {
		text = strings.ReplaceAll(text, "|", `\|`)
	}
	fence := strings.Repeat("`", longestRun(text, '`')+1)
	pad := strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") ||
		(strings.HasPrefix(text, " ") && strings.HasSuffix(text, " ") && strings.TrimSpace(text) != "")
	if pad {
		return fence + " " + text + " " + fence
	}
	return fence + text + fence
}

// destination writes a link or image destination, switching to the
// pointy-bracket form when the bare form would not parse back.
func destination(dest string) string {
	if dest == "" {
		return ""
	}
	if strings.ContainsAny(dest, " \t\n<>") || !balancedParens(dest) {
		return "<" + dest + ">"
	}
	return dest
}

func balancedParens(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// titleSuffix quotes a link title, picking a delimiter it does not contain.
func titleSuffix(title string) string {
	switch {
	case title == "":
		return ""
	case !strings.Contains(title, `"`):
		return ` "` + title + `"`
	case !strings.Contains(title, "'"):
		return " '" + title + "'"
	}
	return " (" + title + ")"
}
