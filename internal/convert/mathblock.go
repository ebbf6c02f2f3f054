package convert

import (
	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/pipeline"
)

// ReinsertMath replaces every paragraph that holds nothing but a math
// sentinel with the math block it stands for. It descends into
// blockquotes and list items; table cells never hold a standalone block.
func ReinsertMath(blocks []*doctree.Node, idx *pipeline.MathIndex) []*doctree.Node {
	if idx.Len() == 0 {
		return blocks
	}
	out := make([]*doctree.Node, len(blocks))
	for i, b := range blocks {
		out[i] = reinsertBlock(b, idx)
	}
	return out
}

func reinsertBlock(n *doctree.Node, idx *pipeline.MathIndex) *doctree.Node {
	if n.Type == doctree.TypeParagraph {
		if block, ok := sentinelParagraph(n, idx); ok {
			return doctree.NewMathBlock(block.Latex)
		}
		return n
	}
	if n.Type == doctree.TypeTable || n.IsInline() || len(n.Content) == 0 {
		return n
	}
	cp := *n
	cp.Content = ReinsertMath(n.Content, idx)
	return &cp
}

// sentinelParagraph reports whether p consists of a single unmarked text
// leaf equal to a known sentinel.
func sentinelParagraph(p *doctree.Node, idx *pipeline.MathIndex) (pipeline.MathBlock, bool) {
	if len(p.Content) != 1 {
		return pipeline.MathBlock{}, false
	}
	leaf := p.Content[0]
	if leaf.Type != doctree.TypeText || len(leaf.Marks) > 0 {
		return pipeline.MathBlock{}, false
	}
	return idx.Lookup(leaf.Text)
}

// RestoreMath puts the literal $$ source back wherever a sentinel
// survived conversion without becoming a math block, such as inside a
// heading or a link destination. It edits doc in place.
func RestoreMath(doc *doctree.Node, idx *pipeline.MathIndex) {
	if idx.Len() == 0 {
		return
	}
	doctree.Walk(doc, func(n *doctree.Node) bool {
		switch n.Type {
		case doctree.TypeText:
			n.Text = idx.Restore(n.Text)
		case doctree.TypeImage:
			for _, key := range []string{doctree.AttrSrc, doctree.AttrAlt, doctree.AttrTitle} {
				if s := n.Attrs.String(key); s != "" {
					n.Attrs[key] = idx.Restore(s)
				}
			}
		case doctree.TypeCodeBlock, doctree.TypeMermaidBlock:
			// Code regions are never rewritten before parsing.
			return false
		}
		for i, m := range n.Marks {
			if m.Type != doctree.MarkLink {
				continue
			}
			if href := m.Attrs.String(doctree.AttrHref); href != "" {
				cp := m.Clone()
				cp.Attrs[doctree.AttrHref] = idx.Restore(href)
				n.Marks[i] = cp
			}
		}
		return true
	})
}
