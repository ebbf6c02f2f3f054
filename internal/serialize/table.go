package serialize

import (
	"strings"

	"github.com/alnah/go-mdtree/internal/doctree"
)

// table writes a GFM pipe table. Every row is padded to the widest row and
// the delimiter row follows the first row.
func (s *serializer) table(n *doctree.Node) string {
	cols := 0
	for _, row := range n.Content {
		cols = max(cols, len(row.Content))
	}
	if cols == 0 {
		return ""
	}

	lines := make([]string, 0, len(n.Content)+1)
	for i, row := range n.Content {
		cells := make([]string, cols)
		for j, cell := range row.Content {
			cells[j] = s.cell(cell)
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
		if i == 0 {
			lines = append(lines, delimiterRow(n.Attrs.Strings(doctree.AttrAlign), cols))
		}
	}
	return strings.Join(lines, "\n")
}

// cell writes the content of a table cell on one line.
func (s *serializer) cell(cell *doctree.Node) string {
	parts := make([]string, 0, len(cell.Content))
	for _, block := range cell.Content {
		var out string
		if block.Type == doctree.TypeParagraph {
			out = s.inline(block.Content, true)
		} else {
			out = s.block(block, blockContext{})
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.ReplaceAll(strings.Join(parts, " "), "\n", " ")
}

func delimiterRow(align []string, cols int) string {
	cells := make([]string, cols)
	for i := range cells {
		var a string
		if i < len(align) {
			a = align[i]
		}
		switch a {
		case "left":
			cells[i] = ":---"
		case "center":
			cells[i] = ":---:"
		case "right":
			cells[i] = "---:"
		default:
			cells[i] = "---"
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}
