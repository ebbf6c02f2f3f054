package serialize

import (
	"strings"

	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/pipeline"
)

// Options controls serialization.
type Options struct {
	// ResolvedImages writes image destinations from their resolved file
	// path instead of the literal source text, and writes wiki embeds as
	// plain images. HTML export uses it so images load from where the
	// workspace index found them.
	ResolvedImages bool
}

// serializer holds the options of one Markdown call.
type serializer struct {
	opts Options
}

// Markdown serializes doc. Blocks are separated by one blank line and the
// output ends with a single newline, converted to CRLF when the document
// was read with CRLF line endings.
func Markdown(doc *doctree.Node, opts Options) string {
	if doc == nil {
		return ""
	}
	s := &serializer{opts: opts}
	out := s.join(doc.Content, false, true)
	if out == "" {
		return ""
	}
	out += "\n"
	if doc.Attrs.String(doctree.AttrLineEnding) == pipeline.LineEndingCRLF {
		out = pipeline.ApplyLineEnding(out, pipeline.LineEndingCRLF)
	}
	return out
}

// blockContext describes where a block is written.
type blockContext struct {
	// docStart is set for the first block written to the document.
	docStart bool
	// afterParagraph is set when the block follows a paragraph with no
	// blank line between them.
	afterParagraph bool
	// alternate asks a list to use its alternate delimiter so it does not
	// merge with the list of the same kind just before it.
	alternate bool
}

// join serializes sibling blocks. Tight siblings are separated by a single
// newline, others by a blank line. Blocks producing no text are dropped.
func (s *serializer) join(nodes []*doctree.Node, tight, docLevel bool) string {
	var b strings.Builder
	var prev *doctree.Node
	run := 0
	for _, n := range nodes {
		if prev != nil && listFamily(prev) != "" && listFamily(prev) == listFamily(n) {
			run++
		} else {
			run = 0
		}
		ctx := blockContext{
			docStart:       docLevel && b.Len() == 0,
			afterParagraph: tight && prev != nil && prev.Type == doctree.TypeParagraph,
			alternate:      run%2 == 1,
		}
		out := s.block(n, ctx)
		if out == "" {
			continue
		}
		if b.Len() > 0 {
			if tight {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(out)
		prev = n
	}
	return b.String()
}

// block serializes one block node without a trailing newline.
func (s *serializer) block(n *doctree.Node, ctx blockContext) string {
	if n.IsList() {
		return s.list(n, ctx.alternate)
	}
	switch n.Type {
	case doctree.TypeParagraph:
		return s.inline(n.Content, false)
	case doctree.TypeHeading:
		return heading(n, s.inline(n.Content, false))
	case doctree.TypeBlockquote:
		return prefixLines(s.join(n.Content, false, false), "> ", ">")
	case doctree.TypeCodeBlock:
		return codeBlock(n)
	case doctree.TypeMermaidBlock:
		return fencedBlock("mermaid", n.Attrs.String(doctree.AttrCode))
	case doctree.TypeMathBlock:
		return mathBlock(n.Attrs.String(doctree.AttrLatex))
	case doctree.TypeFrontmatter:
		return "---\n" + n.Attrs.String(doctree.AttrContent) + "\n---"
	case doctree.TypeThematicBreak:
		// "---" would open frontmatter at the top of the file or turn the
		// paragraph above into a setext heading.
		if ctx.docStart || ctx.afterParagraph {
			return "***"
		}
		return "---"
	case doctree.TypeTable:
		return s.table(n)
	}
	if n.IsInline() {
		return s.inline([]*doctree.Node{n}, false)
	}
	return s.join(n.Content, false, false)
}

func heading(n *doctree.Node, text string) string {
	level, _ := n.Attrs.Int(doctree.AttrLevel)
	level = min(max(level, 1), 6)
	hashes := strings.Repeat("#", level)
	text = strings.ReplaceAll(text, "\n", " ")
	if text == "" {
		return hashes
	}
	return hashes + " " + text
}

func codeBlock(n *doctree.Node) string {
	info := n.Attrs.String(doctree.AttrLanguage)
	if meta := n.Attrs.String(doctree.AttrMeta); meta != "" && info != "" {
		info += " " + meta
	}
	return fencedBlock(info, n.TextContent())
}

// fencedBlock writes code inside a backtick fence longer than any backtick
// run in the code.
func fencedBlock(info, code string) string {
	fence := strings.Repeat("`", max(3, longestRun(code, '`')+1))
	if code == "" {
		return fence + info + "\n" + fence
	}
	return fence + info + "\n" + code + "\n" + fence
}

func mathBlock(latex string) string {
	if latex == "" {
		return "$$\n$$"
	}
	return "$$\n" + latex + "\n$$"
}

// prefixLines prefixes every line of s. Blank lines get blank instead,
// which lets callers avoid trailing whitespace.
func prefixLines(s, prefix, blank string) string {
	if s == "" {
		return strings.TrimRight(prefix, " ")
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = blank
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// longestRun returns the length of the longest run of c in s.
func longestRun(s string, c byte) int {
	longest, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			longest = max(longest, cur)
		} else {
			cur = 0
		}
	}
	return longest
}
