package pipeline

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
)

// span is a half-open byte range [start, stop) of the body.
type span struct {
	start, stop int
}

// codeRegions returns the byte ranges of src that hold code: fenced and
// indented code block content plus inline code span content. Rewrites must
// not touch them. Ranges are sorted and do not overlap.
func codeRegions(md goldmark.Markdown, src []byte) []span {
	root := ParseTree(md, src)

	var spans []span
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			if lines.Len() > 0 {
				spans = append(spans, span{lines.At(0).Start, lines.At(lines.Len() - 1).Stop})
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			first, okFirst := node.FirstChild().(*ast.Text)
			last, okLast := node.LastChild().(*ast.Text)
			if okFirst && okLast {
				spans = append(spans, span{first.Segment.Start, last.Segment.Stop})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

// regionAt returns the region containing offset, if any.
func regionAt(regions []span, offset int) (span, bool) {
	i := sort.Search(len(regions), func(i int) bool { return regions[i].stop > offset })
	if i < len(regions) && regions[i].start <= offset {
		return regions[i], true
	}
	return span{}, false
}
