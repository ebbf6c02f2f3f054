package mdtree

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/yamlutil"
)

// Frontmatter returns the opaque frontmatter text of doc.
func Frontmatter(doc *Node) (string, bool) {
	if doc == nil || len(doc.Content) == 0 {
		return "", false
	}
	first := doc.Content[0]
	if first.Type != doctree.TypeFrontmatter {
		return "", false
	}
	return first.Attrs.String(doctree.AttrContent), true
}

// DecodeFrontmatter decodes the frontmatter of doc as YAML into v.
// Parsing never interprets frontmatter; this is the only place it is read.
// An empty frontmatter leaves v untouched.
func DecodeFrontmatter(doc *Node, v any) error {
	content, ok := Frontmatter(doc)
	if !ok {
		return ErrNoFrontmatter
	}
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if err := yamlutil.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	return nil
}
