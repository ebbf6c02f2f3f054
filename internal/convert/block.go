package convert

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-mdtree/internal/doctree"
)

// mermaidLanguage tags fenced code that becomes a diagram block.
const mermaidLanguage = "mermaid"

// blocks converts every block child of parent in order.
func (c *converter) blocks(parent ast.Node) []*doctree.Node {
	var out []*doctree.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.block(child)...)
	}
	return out
}

// block converts one goldmark block node. Most kinds map to exactly one
// Document node; unknown containers are flattened into their children.
func (c *converter) block(n ast.Node) []*doctree.Node {
	switch n := n.(type) {
	case *ast.Heading:
		return one(doctree.NewHeading(n.Level, c.inlines(n)...))
	case *ast.Paragraph, *ast.TextBlock:
		return one(doctree.NewParagraph(c.inlines(n)...))
	case *ast.Blockquote:
		return one(doctree.NewBlockquote(c.blocks(n)...))
	case *ast.List:
		return one(c.list(n))
	case *ast.FencedCodeBlock:
		return one(c.fencedCode(n))
	case *ast.CodeBlock:
		return one(doctree.NewCodeBlock("", c.codeLines(n)))
	case *ast.ThematicBreak:
		return one(doctree.NewThematicBreak())
	case *ast.HTMLBlock:
		return one(c.htmlBlock(n))
	case *east.Table:
		return one(c.table(n))
	}
	return c.blocks(n)
}

func one(n *doctree.Node) []*doctree.Node {
	return []*doctree.Node{n}
}

// fencedCode converts a fenced block, turning mermaid fences into diagram
// blocks. Info string words after the language are kept as meta.
func (c *converter) fencedCode(n *ast.FencedCodeBlock) *doctree.Node {
	code := c.codeLines(n)
	var lang, meta string
	if n.Info != nil {
		info := strings.TrimSpace(string(n.Info.Segment.Value(c.source)))
		lang, meta, _ = strings.Cut(info, " ")
		meta = strings.TrimSpace(meta)
	}
	if lang == mermaidLanguage && meta == "" {
		return doctree.NewMermaidBlock(code)
	}
	block := doctree.NewCodeBlock(lang, code)
	if meta != "" {
		block.Attrs[doctree.AttrMeta] = meta
	}
	return block
}

// codeLines joins the raw lines of a code block without the final newline.
func (c *converter) codeLines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(c.source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// list converts a goldmark list. A list holding at least one checkbox item
// becomes a taskList; its items without a checkbox stay plain listItems.
func (c *converter) list(n *ast.List) *doctree.Node {
	task := false
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		if _, ok := taskCheckBox(item); ok {
			task = true
			break
		}
	}

	listType := doctree.TypeBulletList
	switch {
	case task:
		listType = doctree.TypeTaskList
	case n.IsOrdered():
		listType = doctree.TypeOrderedList
	}

	var items []*doctree.Node
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		blocks := c.blocks(item)
		if box, ok := taskCheckBox(item); ok {
			items = append(items, doctree.NewTaskItem(box.IsChecked, blocks...))
			continue
		}
		items = append(items, doctree.NewListItem(blocks...))
	}

	list := doctree.NewList(listType, items...)
	attrs := doctree.Attrs{}
	if n.IsOrdered() {
		attrs[doctree.AttrStart] = n.Start
		if task {
			attrs[doctree.AttrOrdered] = true
		}
	}
	if !n.IsTight {
		attrs[doctree.AttrTight] = false
	}
	if len(attrs) > 0 {
		list.Attrs = attrs
	}
	return list
}

// taskCheckBox returns the checkbox opening a list item, if any.
func taskCheckBox(item ast.Node) (*east.TaskCheckBox, bool) {
	first := item.FirstChild()
	if first == nil {
		return nil, false
	}
	box, ok := first.FirstChild().(*east.TaskCheckBox)
	return box, ok
}

// table converts a GFM table. The header row's cells become tableHeader
// nodes; column alignment is kept when any column declares one.
func (c *converter) table(n *east.Table) *doctree.Node {
	var rows []*doctree.Node
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		_, header := row.(*east.TableHeader)
		var cells []*doctree.Node
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, doctree.NewTableCell(header, c.inlines(cell)...))
		}
		rows = append(rows, doctree.NewTableRow(cells...))
	}

	table := doctree.NewTable(rows...)
	aligned := false
	align := make([]any, len(n.Alignments))
	for i, a := range n.Alignments {
		switch a {
		case east.AlignLeft:
			align[i], aligned = "left", true
		case east.AlignCenter:
			align[i], aligned = "center", true
		case east.AlignRight:
			align[i], aligned = "right", true
		default:
			align[i] = ""
		}
	}
	if aligned {
		table.Attrs = doctree.Attrs{doctree.AttrAlign: align}
	}
	return table
}

// htmlBlock rescans a raw HTML block for comment markers. Without any, the
// block becomes a paragraph holding its literal text.
func (c *converter) htmlBlock(n *ast.HTMLBlock) *doctree.Node {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(c.source))
	}
	if n.HasClosure() {
		buf.Write(n.ClosureLine.Value(c.source))
	}
	raw := strings.TrimSpace(buf.String())
	return doctree.NewParagraph(markersInHTML(raw)...)
}
