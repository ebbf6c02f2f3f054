package doctree

import (
	"strconv"
	"strings"
)

// CommentIDs lists the comment ids referenced in the tree, in document order
// and without duplicates. Both commentMark marks and commentId attributes on
// atomic nodes are reported.
func CommentIDs(root *Node) []string {
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	Walk(root, func(n *Node) bool {
		add(n.Attrs.String(AttrCommentID))
		for _, m := range n.Marks {
			if m.Type == MarkComment {
				add(m.Attrs.String(AttrCommentID))
			}
		}
		return true
	})
	return ids
}

// ParseCommentID returns the numeric part of an id of the form cN.
func ParseCommentID(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, "c")
	if !ok || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextCommentID returns the id following the highest cN in ids.
// Gaps are not reused. Ids that are not of the form cN are ignored.
func NextCommentID(ids []string) string {
	highest := 0
	for _, id := range ids {
		if n, ok := ParseCommentID(id); ok && n > highest {
			highest = n
		}
	}
	return "c" + strconv.Itoa(highest+1)
}

// maxLatexPreview bounds the LaTeX shown for a math node in CommentTexts.
const maxLatexPreview = 40

// CommentTexts maps each comment id to the text it anchors. The text of
// every leaf carrying the mark is joined in document order. Atomic nodes
// holding a commentId are described by kind.
func CommentTexts(root *Node) map[string]string {
	texts := make(map[string]string)
	Walk(root, func(n *Node) bool {
		if id := n.Attrs.String(AttrCommentID); id != "" {
			if _, ok := texts[id]; !ok {
				texts[id] = describeAtom(n)
			}
		}
		for _, m := range n.Marks {
			if m.Type != MarkComment {
				continue
			}
			id := m.Attrs.String(AttrCommentID)
			switch n.Type {
			case TypeText:
				texts[id] += n.Text
			case TypeMathInline:
				texts[id] += describeAtom(n)
			}
		}
		return true
	})
	return texts
}

func describeAtom(n *Node) string {
	switch n.Type {
	case TypeMermaidBlock:
		return "[Mermaid diagram]"
	case TypeMathBlock, TypeMathInline:
		latex := []rune(n.Attrs.String(AttrLatex))
		if len(latex) > maxLatexPreview {
			latex = latex[:maxLatexPreview]
		}
		return "[Math: " + string(latex) + "]"
	case TypeImage:
		return "[Image: " + n.Attrs.String(AttrAlt) + "]"
	}
	return "[Block]"
}

// RemoveComment returns a copy of root without the comment id: its marks
// are dropped from every leaf and the attribute cleared from atomic nodes.
// Zero-length leaves that only held the marker disappear. root is not
// modified.
func RemoveComment(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	out := root.Clone()
	removeComment(out, id)
	return out
}

func removeComment(n *Node, id string) {
	if n.Attrs.String(AttrCommentID) == id {
		delete(n.Attrs, AttrCommentID)
	}
	if n.Content == nil {
		return
	}
	kept := n.Content[:0]
	for _, c := range n.Content {
		if len(c.Marks) > 0 {
			marks := c.Marks[:0]
			for _, m := range c.Marks {
				if m.Type == MarkComment && m.Attrs.String(AttrCommentID) == id {
					continue
				}
				marks = append(marks, m)
			}
			if len(marks) == 0 {
				marks = nil
			}
			if c.Type == TypeText && c.Text == "" && len(marks) < len(c.Marks) {
				continue
			}
			c.Marks = marks
		}
		removeComment(c, id)
		kept = append(kept, c)
	}
	n.Content = kept
}
