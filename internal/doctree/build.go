package doctree

// Constructors for the node shapes produced by the converter.
// They keep attribute spelling in one place.

// NewDoc returns a doc node holding blocks.
func NewDoc(blocks ...*Node) *Node {
	return &Node{Type: TypeDoc, Content: blocks}
}

// NewParagraph returns a paragraph holding inlines. With no inlines the
// paragraph is empty and carries no content slice.
func NewParagraph(inlines ...*Node) *Node {
	p := &Node{Type: TypeParagraph}
	if len(inlines) > 0 {
		p.Content = inlines
	}
	return p
}

// NewHeading returns a heading of the given level (1-6).
func NewHeading(level int, inlines ...*Node) *Node {
	h := &Node{Type: TypeHeading, Attrs: Attrs{AttrLevel: level}}
	if len(inlines) > 0 {
		h.Content = inlines
	}
	return h
}

// NewText returns a text leaf.
func NewText(text string, marks ...Mark) *Node {
	n := &Node{Type: TypeText, Text: text}
	if len(marks) > 0 {
		n.Marks = marks
	}
	return n
}

// NewHardBreak returns a hard line break.
func NewHardBreak() *Node {
	return &Node{Type: TypeHardBreak}
}

// NewMathInline returns an inline math node.
func NewMathInline(latex string) *Node {
	return &Node{Type: TypeMathInline, Attrs: Attrs{AttrLatex: latex}}
}

// NewMathBlock returns a display math block.
func NewMathBlock(latex string) *Node {
	return &Node{Type: TypeMathBlock, Attrs: Attrs{AttrLatex: latex}}
}

// NewMermaidBlock returns a diagram block.
func NewMermaidBlock(code string) *Node {
	return &Node{Type: TypeMermaidBlock, Attrs: Attrs{AttrCode: code}}
}

// NewFrontmatter returns a frontmatter node with its opaque body.
func NewFrontmatter(content string) *Node {
	return &Node{Type: TypeFrontmatter, Attrs: Attrs{AttrContent: content}}
}

// NewCodeBlock returns a code block. An empty language is stored as null.
func NewCodeBlock(language, code string) *Node {
	attrs := Attrs{AttrLanguage: nil}
	if language != "" {
		attrs[AttrLanguage] = language
	}
	n := &Node{Type: TypeCodeBlock, Attrs: attrs}
	if code != "" {
		n.Content = []*Node{NewText(code)}
	}
	return n
}

// NewImage returns an image node. Title is stored as null when empty.
func NewImage(src, alt, title string) *Node {
	attrs := Attrs{AttrSrc: src, AttrAlt: nil, AttrTitle: nil}
	if alt != "" {
		attrs[AttrAlt] = alt
	}
	if title != "" {
		attrs[AttrTitle] = title
	}
	return &Node{Type: TypeImage, Attrs: attrs}
}

// NewThematicBreak returns a horizontal rule.
func NewThematicBreak() *Node {
	return &Node{Type: TypeThematicBreak}
}

// NewBlockquote returns a blockquote holding blocks.
func NewBlockquote(blocks ...*Node) *Node {
	return &Node{Type: TypeBlockquote, Content: blocks}
}

// NewList returns a list container of the given type.
func NewList(listType string, items ...*Node) *Node {
	return &Node{Type: listType, Content: items}
}

// NewListItem returns a plain list item. Items are never empty: an item
// without blocks holds one empty paragraph.
func NewListItem(blocks ...*Node) *Node {
	if len(blocks) == 0 {
		blocks = []*Node{NewParagraph()}
	}
	return &Node{Type: TypeListItem, Content: blocks}
}

// NewTaskItem returns a task list item carrying its checked state.
func NewTaskItem(checked bool, blocks ...*Node) *Node {
	if len(blocks) == 0 {
		blocks = []*Node{NewParagraph()}
	}
	return &Node{Type: TypeTaskItem, Attrs: Attrs{AttrChecked: checked}, Content: blocks}
}

// NewTable returns a table holding rows.
func NewTable(rows ...*Node) *Node {
	return &Node{Type: TypeTable, Content: rows}
}

// NewTableRow returns a table row holding cells.
func NewTableRow(cells ...*Node) *Node {
	return &Node{Type: TypeTableRow, Content: cells}
}

// NewTableCell returns a header or body cell wrapping inlines in a paragraph.
func NewTableCell(header bool, inlines ...*Node) *Node {
	t := TypeTableCell
	if header {
		t = TypeTableHeader
	}
	return &Node{Type: t, Content: []*Node{NewParagraph(inlines...)}}
}
