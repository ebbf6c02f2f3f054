package serialize

import (
	"strconv"
	"strings"

	"github.com/alnah/go-mdtree/internal/doctree"
)

// listFamily groups list types that share a marker style. Two adjacent
// lists of one family would merge when read back.
func listFamily(n *doctree.Node) string {
	if !n.IsList() {
		return ""
	}
	switch n.Type {
	case doctree.TypeBulletList:
		return "bullet"
	case doctree.TypeOrderedList:
		return "ordered"
	case doctree.TypeTaskList:
		if n.Attrs.Bool(doctree.AttrOrdered) {
			return "ordered"
		}
		return "bullet"
	}
	return ""
}

// list writes a list. Continuation lines of an item are indented by the
// width of its marker, which is two spaces for bullets and task items.
func (s *serializer) list(n *doctree.Node, alternate bool) string {
	tight := true
	if v, ok := n.Attrs[doctree.AttrTight].(bool); ok {
		tight = v
	}
	ordered := listFamily(n) == "ordered"
	start := 1
	if v, ok := n.Attrs.Int(doctree.AttrStart); ok {
		start = v
	}

	bullet, delim := "-", "."
	if alternate {
		bullet, delim = "*", ")"
	}

	items := make([]string, 0, len(n.Content))
	for i, item := range n.Content {
		marker := bullet + " "
		if ordered {
			marker = strconv.Itoa(start+i) + delim + " "
		}
		items = append(items, s.listItem(item, marker, tight))
	}

	sep := "\n"
	if !tight {
		sep = "\n\n"
	}
	return strings.Join(items, sep)
}

func (s *serializer) listItem(item *doctree.Node, marker string, tight bool) string {
	lead := marker
	if item.Type == doctree.TypeTaskItem {
		if item.Attrs.Bool(doctree.AttrChecked) {
			lead += "[x] "
		} else {
			lead += "[ ] "
		}
	}

	body := s.join(item.Content, tight, false)
	if body == "" {
		return strings.TrimRight(lead, " ")
	}

	indent := strings.Repeat(" ", len(marker))
	first, rest, more := strings.Cut(body, "\n")
	if !more {
		return lead + first
	}
	return lead + first + "\n" + prefixLines(rest, indent, "")
}
