package convert

import (
	"github.com/alnah/go-mdtree/internal/doctree"
)

// textLeaves splits a run of plain text into text leaves and inline math
// nodes. A span $x$ is math when neither delimiter is part of $$, the
// opener is not escaped, and the content is non-empty with no whitespace
// just inside either delimiter. Anything else stays text.
func (c *converter) textLeaves(s string) []*doctree.Node {
	var out []*doctree.Node
	last := 0
	for i := 0; i < len(s); i++ {
		if !isMathOpener(s, i) {
			continue
		}
		end := mathCloser(s, i)
		if end < 0 {
			continue
		}
		if i > last {
			out = append(out, doctree.NewText(s[last:i]))
		}
		out = append(out, doctree.NewMathInline(s[i+1:end]))
		last = end + 1
		i = end
	}
	if last < len(s) {
		out = append(out, doctree.NewText(s[last:]))
	}
	return out
}

// isMathOpener reports whether s[i] can open an inline math span.
func isMathOpener(s string, i int) bool {
	if s[i] != '$' {
		return false
	}
	if i > 0 && (s[i-1] == '$' || s[i-1] == '\\') {
		return false
	}
	if i+1 >= len(s) || s[i+1] == '$' || isSpace(s[i+1]) {
		return false
	}
	return true
}

// mathCloser returns the index of the dollar closing the span opened at
// open, or -1. The closer is the first unescaped dollar after the opener.
func mathCloser(s string, open int) int {
	for j := open + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '$':
			if j+1 < len(s) && s[j+1] == '$' {
				return -1
			}
			if isSpace(s[j-1]) || j == open+1 {
				return -1
			}
			return j
		}
	}
	return -1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
