package mdtree

import (
	"errors"

	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNilDocument    = errors.New("document is nil")
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Tree decoding errors.
	ErrInvalidDocument = doctree.ErrInvalidDocument
	ErrUnknownNodeType = doctree.ErrUnknownNodeType

	// Frontmatter decoding errors.
	ErrNoFrontmatter      = errors.New("document has no frontmatter")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
