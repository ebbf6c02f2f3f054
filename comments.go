package mdtree

import "github.com/alnah/go-mdtree/internal/doctree"

// CommentIDs lists the comment ids anchored in doc, in document order and
// without duplicates.
func CommentIDs(doc *Node) []string {
	return doctree.CommentIDs(doc)
}

// NextCommentID returns the id a new comment thread should use: one past
// the highest cN in ids, or c1 when there is none. Gaps are not reused.
func NextCommentID(ids []string) string {
	return doctree.NextCommentID(ids)
}

// CommentTexts maps each comment id in doc to the text it anchors. Atomic
// nodes are described by kind, e.g. "[Mermaid diagram]".
func CommentTexts(doc *Node) map[string]string {
	return doctree.CommentTexts(doc)
}

// RemoveComment returns a copy of doc with every anchor of the comment id
// removed. The anchored text stays in place.
func RemoveComment(doc *Node, id string) *Node {
	return doctree.RemoveComment(doc, id)
}
