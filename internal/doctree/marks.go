package doctree

// Mark types.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkUnderline = "underline"
	MarkLink      = "link"
	MarkComment   = "commentMark"
)

// markRank orders mark types from outermost to innermost when the
// serializer wraps a run of text. Code is innermost because code span
// content is literal and cannot hold other delimiters.
var markRank = map[string]int{
	MarkLink:      0,
	MarkBold:      1,
	MarkItalic:    2,
	MarkStrike:    3,
	MarkUnderline: 4,
	MarkComment:   5,
	MarkCode:      6,
}

// Mark is a formatting annotation attached to an inline node.
type Mark struct {
	Type  string `json:"type"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// NewMark returns an attribute-less mark.
func NewMark(markType string) Mark {
	return Mark{Type: markType}
}

// LinkMark returns a link mark. Title and autolink are only recorded when set.
func LinkMark(href, title string, autolink bool) Mark {
	attrs := Attrs{AttrHref: href}
	if title != "" {
		attrs[AttrTitle] = title
	}
	if autolink {
		attrs[AttrAutolink] = true
	}
	return Mark{Type: MarkLink, Attrs: attrs}
}

// CommentMark returns a mark anchoring a comment thread to a span.
func CommentMark(commentID string) Mark {
	return Mark{Type: MarkComment, Attrs: Attrs{AttrCommentID: commentID}}
}

// Rank returns the nesting position of the mark type, outermost first.
// Unknown types sort after every known type.
func (m Mark) Rank() int {
	if r, ok := markRank[m.Type]; ok {
		return r
	}
	return len(markRank)
}

// Equal reports whether m and o have the same type and attributes.
func (m Mark) Equal(o Mark) bool {
	return m.Type == o.Type && m.Attrs.Equal(o.Attrs)
}

// Clone returns a copy of m with its own attribute map.
func (m Mark) Clone() Mark {
	c := Mark{Type: m.Type}
	if m.Attrs != nil {
		c.Attrs = m.Attrs.Clone()
	}
	return c
}

// MarksEqual reports whether a and b hold the same marks regardless of order.
func MarksEqual(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ma := range a {
		found := false
		for _, mb := range b {
			if ma.Equal(mb) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ContainsMark reports whether marks holds a mark equal to m.
func ContainsMark(marks []Mark, m Mark) bool {
	for _, x := range marks {
		if x.Equal(m) {
			return true
		}
	}
	return false
}
