package doctree

// Block node types.
const (
	TypeDoc           = "doc"
	TypeParagraph     = "paragraph"
	TypeHeading       = "heading"
	TypeBlockquote    = "blockquote"
	TypeBulletList    = "bulletList"
	TypeOrderedList   = "orderedList"
	TypeTaskList      = "taskList"
	TypeListItem      = "listItem"
	TypeTaskItem      = "taskItem"
	TypeCodeBlock     = "codeBlock"
	TypeThematicBreak = "thematicBreak"
	TypeTable         = "table"
	TypeTableRow      = "tableRow"
	TypeTableCell     = "tableCell"
	TypeTableHeader   = "tableHeader"
	TypeFrontmatter   = "frontmatter"
	TypeMathBlock     = "mathBlock"
	TypeMermaidBlock  = "mermaidBlock"
)

// Inline node types. TypeImage is also accepted at block level.
const (
	TypeText       = "text"
	TypeHardBreak  = "hardBreak"
	TypeMathInline = "mathInline"
	TypeImage      = "image"
)

// Attribute keys.
const (
	AttrLevel       = "level"
	AttrLanguage    = "language"
	AttrMeta        = "meta"
	AttrStart       = "start"
	AttrTight       = "tight"
	AttrOrdered     = "ordered"
	AttrChecked     = "checked"
	AttrAlign       = "align"
	AttrContent     = "content"
	AttrLatex       = "latex"
	AttrCode        = "code"
	AttrSrc         = "src"
	AttrAlt         = "alt"
	AttrTitle       = "title"
	AttrOriginalSrc = "originalSrc"
	AttrFilePath    = "filePath"
	AttrWikiEmbed   = "wikiEmbed"
	AttrCommentID   = "commentId"
	AttrHref        = "href"
	AttrAutolink    = "autolink"
	AttrLineEnding  = "lineEnding"
)

// knownTypes is the closed set of node types a tree may contain.
var knownTypes = map[string]bool{
	TypeDoc: true, TypeParagraph: true, TypeHeading: true, TypeBlockquote: true,
	TypeBulletList: true, TypeOrderedList: true, TypeTaskList: true,
	TypeListItem: true, TypeTaskItem: true, TypeCodeBlock: true,
	TypeThematicBreak: true, TypeTable: true, TypeTableRow: true,
	TypeTableCell: true, TypeTableHeader: true, TypeFrontmatter: true,
	TypeMathBlock: true, TypeMermaidBlock: true, TypeText: true,
	TypeHardBreak: true, TypeMathInline: true, TypeImage: true,
}

// IsKnownType reports whether t names a node type of the Document Tree.
func IsKnownType(t string) bool {
	return knownTypes[t]
}

// Node is a single element of the Document Tree.
// Container nodes use Content; text leaves use Text and Marks.
// Child order is source order.
type Node struct {
	Type    string  `json:"type"`
	Attrs   Attrs   `json:"attrs,omitempty"`
	Content []*Node `json:"content,omitempty"`
	Text    string  `json:"text,omitempty"`
	Marks   []Mark  `json:"marks,omitempty"`
}

// IsInline reports whether n belongs inside a paragraph, heading or cell.
func (n *Node) IsInline() bool {
	switch n.Type {
	case TypeText, TypeHardBreak, TypeMathInline, TypeImage:
		return true
	}
	return false
}

// IsList reports whether n is one of the three list container types.
func (n *Node) IsList() bool {
	switch n.Type {
	case TypeBulletList, TypeOrderedList, TypeTaskList:
		return true
	}
	return false
}

// HasMark reports whether n carries a mark of the given type.
func (n *Node) HasMark(markType string) bool {
	_, ok := n.Mark(markType)
	return ok
}

// Mark returns the first mark of the given type.
func (n *Node) Mark(markType string) (Mark, bool) {
	for _, m := range n.Marks {
		if m.Type == markType {
			return m, true
		}
	}
	return Mark{}, false
}

// AddMark returns a shallow copy of n with m appended to its marks.
// Existing marks keep their position so the newest mark is the outermost.
func (n *Node) AddMark(m Mark) *Node {
	c := *n
	c.Marks = make([]Mark, 0, len(n.Marks)+1)
	c.Marks = append(c.Marks, n.Marks...)
	c.Marks = append(c.Marks, m)
	return &c
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Type: n.Type, Text: n.Text}
	if n.Attrs != nil {
		c.Attrs = n.Attrs.Clone()
	}
	if n.Marks != nil {
		c.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			c.Marks[i] = m.Clone()
		}
	}
	if n.Content != nil {
		c.Content = make([]*Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = child.Clone()
		}
	}
	return c
}

// TextContent concatenates the text of every leaf under n.
func (n *Node) TextContent() string {
	if n.Type == TypeText {
		return n.Text
	}
	var out []byte
	for _, c := range n.Content {
		out = append(out, c.TextContent()...)
	}
	return string(out)
}
