package convert

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-mdtree/internal/doctree"
)

// tokenKind classifies the flattened inline siblings of a block.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenHTML
	tokenBreak
	tokenNode
)

// token is one element of the flattened sibling list. Adjacent text is
// merged, so a pattern never has to look across goldmark's arbitrary
// text splits.
type token struct {
	kind tokenKind
	text string
	node ast.Node
}

// inlines converts the inline children of parent.
func (c *converter) inlines(parent ast.Node) []*doctree.Node {
	return mergeText(c.convertTokens(c.tokens(parent)))
}

// tokens flattens the inline children of parent.
func (c *converter) tokens(parent ast.Node) []token {
	var toks []token
	addText := func(s string) {
		if n := len(toks); n > 0 && toks[n-1].kind == tokenText {
			toks[n-1].text += s
			return
		}
		toks = append(toks, token{kind: tokenText, text: s})
	}

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			addText(string(n.Segment.Value(c.source)))
			switch {
			case n.HardLineBreak():
				toks = append(toks, token{kind: tokenBreak})
			case n.SoftLineBreak():
				addText("\n")
			}
		case *ast.String:
			addText(string(n.Value))
		case *ast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				buf.Write(seg.Value(c.source))
			}
			toks = append(toks, token{kind: tokenHTML, text: buf.String()})
		case *east.TaskCheckBox:
			// Recorded on the list item.
		default:
			toks = append(toks, token{kind: tokenNode, node: child})
		}
	}
	return toks
}

// convertTokens scans toks left to right, matching comment markers,
// underlines and bare marks before falling back to per-token conversion.
func (c *converter) convertTokens(toks []token) []*doctree.Node {
	var out []*doctree.Node
	for i := 0; i < len(toks); {
		tok := toks[i]
		switch tok.kind {
		case tokenHTML:
			nodes, next := c.matchHTML(toks, i)
			out = append(out, nodes...)
			i = next
			continue
		case tokenText:
			out = append(out, c.textLeaves(tok.text)...)
		case tokenBreak:
			out = append(out, doctree.NewHardBreak())
		case tokenNode:
			out = append(out, c.inline(tok.node)...)
		}
		i++
	}
	return out
}

// inline converts a single goldmark inline node other than text and raw
// HTML.
func (c *converter) inline(n ast.Node) []*doctree.Node {
	switch n := n.(type) {
	case *ast.Emphasis:
		markType := doctree.MarkItalic
		if n.Level >= 2 {
			markType = doctree.MarkBold
		}
		return withMark(c.inlines(n), doctree.NewMark(markType))
	case *east.Strikethrough:
		return withMark(c.inlines(n), doctree.NewMark(doctree.MarkStrike))
	case *ast.CodeSpan:
		return []*doctree.Node{doctree.NewText(c.codeSpanText(n), doctree.NewMark(doctree.MarkCode))}
	case *ast.Link:
		children := c.inlines(n)
		if len(children) == 0 {
			children = []*doctree.Node{doctree.NewText("")}
		}
		mark := doctree.LinkMark(string(n.Destination), string(n.Title), false)
		return withMark(children, mark)
	case *ast.AutoLink:
		mark := doctree.LinkMark(string(n.URL(c.source)), "", true)
		return []*doctree.Node{doctree.NewText(string(n.Label(c.source)), mark)}
	case *ast.Image:
		return []*doctree.Node{doctree.NewImage(string(n.Destination), c.plainText(n), string(n.Title))}
	}
	return c.inlines(n)
}

// codeSpanText joins code span content, turning line endings into spaces.
func (c *converter) codeSpanText(n *ast.CodeSpan) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

// plainText returns the text content of n's descendants, used for image
// alt text.
func (c *converter) plainText(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// withMark adds m to every node, outside the marks they already carry.
func withMark(nodes []*doctree.Node, m doctree.Mark) []*doctree.Node {
	out := make([]*doctree.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.AddMark(m)
	}
	return out
}

// mergeText joins adjacent text leaves carrying the same marks.
func mergeText(nodes []*doctree.Node) []*doctree.Node {
	if len(nodes) < 2 {
		return nodes
	}
	out := make([]*doctree.Node, 0, len(nodes))
	for _, n := range nodes {
		if last := len(out) - 1; last >= 0 &&
			n.Type == doctree.TypeText && out[last].Type == doctree.TypeText &&
			doctree.MarksEqual(n.Marks, out[last].Marks) {
			merged := *out[last]
			merged.Text += n.Text
			out[last] = &merged
			continue
		}
		out = append(out, n)
	}
	return out
}
