package convert

import (
	"regexp"

	"github.com/alnah/go-mdtree/internal/doctree"
)

// Inline HTML tags that take part in recognized patterns.
const (
	tagMarkOpen       = "<mark>"
	tagMarkClose      = "</mark>"
	tagSupOpen        = "<sup>"
	tagSupClose       = "</sup>"
	tagUnderlineOpen  = "<u>"
	tagUnderlineClose = "</u>"
)

var (
	// commentIDPattern matches the text between <sup> and </sup>.
	commentIDPattern = regexp.MustCompile(`^\[c(\d+)\]$`)

	// htmlMarkerPattern finds comment markers inside a raw HTML block.
	htmlMarkerPattern = regexp.MustCompile(`(?s)<mark>(.*?)</mark><sup>\[c(\d+)\]</sup>`)
)

// matchHTML handles the raw HTML token at toks[i]. It returns the nodes to
// emit and the index of the next unconsumed token. Tags that do not open a
// complete pattern are emitted as literal text.
func (c *converter) matchHTML(toks []token, i int) ([]*doctree.Node, int) {
	switch toks[i].text {
	case tagMarkOpen:
		if nodes, next, ok := c.matchCommentMarker(toks, i); ok {
			return nodes, next
		}
		if nodes, next, ok := matchBareMark(toks, i); ok {
			return nodes, next
		}
		c.log.MarkerDegraded(toks[i].text, "no closing tag or comment id")
	case tagUnderlineOpen:
		if nodes, next, ok := c.matchUnderline(toks, i); ok {
			return nodes, next
		}
		c.log.MarkerDegraded(toks[i].text, "no closing tag")
	}
	return []*doctree.Node{doctree.NewText(toks[i].text)}, i + 1
}

// matchCommentMarker matches
//
//	<mark> inline* </mark> <sup> [cN] </sup>
//
// starting at toks[i]. The close tag is the first </mark> after the open
// tag; the four tokens after it must complete the suffix exactly.
func (c *converter) matchCommentMarker(toks []token, i int) ([]*doctree.Node, int, bool) {
	closeAt := findHTML(toks, i+1, tagMarkClose)
	if closeAt < 0 || closeAt+3 >= len(toks) {
		return nil, 0, false
	}
	if !isHTML(toks[closeAt+1], tagSupOpen) ||
		toks[closeAt+2].kind != tokenText ||
		!isHTML(toks[closeAt+3], tagSupClose) {
		return nil, 0, false
	}
	m := commentIDPattern.FindStringSubmatch(toks[closeAt+2].text)
	if m == nil {
		return nil, 0, false
	}

	mark := doctree.CommentMark("c" + m[1])
	interior := c.convertTokens(toks[i+1 : closeAt])
	if len(interior) == 0 {
		// Keep the anchor even when the span shows nothing.
		return []*doctree.Node{doctree.NewText("", mark)}, closeAt + 4, true
	}
	return withMark(interior, mark), closeAt + 4, true
}

// matchBareMark matches <mark> text </mark> without a comment suffix and
// returns it as literal text, so highlights typed by hand survive untouched.
func matchBareMark(toks []token, i int) ([]*doctree.Node, int, bool) {
	if i+2 >= len(toks) ||
		toks[i+1].kind != tokenText ||
		!isHTML(toks[i+2], tagMarkClose) {
		return nil, 0, false
	}
	return []*doctree.Node{
		doctree.NewText(tagMarkOpen),
		doctree.NewText(toks[i+1].text),
		doctree.NewText(tagMarkClose),
	}, i + 3, true
}

// matchUnderline matches <u> inline+ </u> and marks the interior.
func (c *converter) matchUnderline(toks []token, i int) ([]*doctree.Node, int, bool) {
	closeAt := findHTML(toks, i+1, tagUnderlineClose)
	if closeAt < 0 {
		return nil, 0, false
	}
	interior := c.convertTokens(toks[i+1 : closeAt])
	if len(interior) == 0 {
		return nil, 0, false
	}
	return withMark(interior, doctree.NewMark(doctree.MarkUnderline)), closeAt + 1, true
}

// findHTML returns the index of the first HTML token equal to tag at or
// after from, or -1.
func findHTML(toks []token, from int, tag string) int {
	for j := from; j < len(toks); j++ {
		if isHTML(toks[j], tag) {
			return j
		}
	}
	return -1
}

func isHTML(t token, tag string) bool {
	return t.kind == tokenHTML && t.text == tag
}

// markersInHTML splits the text of a raw HTML block around comment markers.
// Marker content is kept as literal text carrying the comment mark.
func markersInHTML(raw string) []*doctree.Node {
	if raw == "" {
		return nil
	}
	matches := htmlMarkerPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return []*doctree.Node{doctree.NewText(raw)}
	}

	var out []*doctree.Node
	last := 0
	for _, m := range matches {
		if m[0] > last {
			out = append(out, doctree.NewText(raw[last:m[0]]))
		}
		mark := doctree.CommentMark("c" + raw[m[4]:m[5]])
		out = append(out, doctree.NewText(raw[m[2]:m[3]], mark))
		last = m[1]
	}
	if last < len(raw) {
		out = append(out, doctree.NewText(raw[last:]))
	}
	return out
}
