package convert

import (
	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/logger"
	"github.com/alnah/go-mdtree/internal/pipeline"
)

// Options carries the per-call inputs of Document.
type Options struct {
	// SourceDir is the directory of the file being parsed, used as the last
	// resort for relative image paths. Empty disables that fallback.
	SourceDir string
	// Index is the workspace-wide name lookup. Nil disables it.
	Index FileIndex
	// Logger receives debug events for degraded patterns. Nil discards.
	Logger *logger.Logger
}

// converter holds the read-only state of one conversion.
type converter struct {
	source []byte
	math   *pipeline.MathIndex
	log    *logger.Logger
}

// Document converts the goldmark tree root parsed from src.Body into a
// Document Tree and runs the math and image post-passes.
func Document(src *pipeline.Source, root ast.Node, opts Options) *doctree.Node {
	c := &converter{source: src.Body, math: src.Math, log: logger.OrDiscard(opts.Logger)}

	blocks := c.blocks(root)
	blocks = ReinsertMath(blocks, src.Math)

	var content []*doctree.Node
	if src.HasFrontmatter {
		content = append(content, doctree.NewFrontmatter(src.Frontmatter))
	}
	content = append(content, blocks...)
	if len(content) == 0 {
		content = []*doctree.Node{doctree.NewParagraph()}
	}

	doc := doctree.NewDoc(content...)
	if src.LineEnding == pipeline.LineEndingCRLF {
		doc.Attrs = doctree.Attrs{doctree.AttrLineEnding: pipeline.LineEndingCRLF}
	}

	RestoreMath(doc, src.Math)

	resolver := &ImageResolver{SourceDir: opts.SourceDir, Index: opts.Index, Logger: c.log}
	resolver.Resolve(doc)
	return doc
}
