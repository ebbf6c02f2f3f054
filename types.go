package mdtree

import (
	"github.com/alnah/go-mdtree/internal/convert"
	"github.com/alnah/go-mdtree/internal/doctree"
)

// Document Tree types. A Node is a block, an inline leaf or the doc root;
// see the Type constants for the closed set of node types.
type (
	Node  = doctree.Node
	Mark  = doctree.Mark
	Attrs = doctree.Attrs
)

// Node types.
const (
	TypeDoc           = doctree.TypeDoc
	TypeParagraph     = doctree.TypeParagraph
	TypeHeading       = doctree.TypeHeading
	TypeBlockquote    = doctree.TypeBlockquote
	TypeBulletList    = doctree.TypeBulletList
	TypeOrderedList   = doctree.TypeOrderedList
	TypeTaskList      = doctree.TypeTaskList
	TypeListItem      = doctree.TypeListItem
	TypeTaskItem      = doctree.TypeTaskItem
	TypeCodeBlock     = doctree.TypeCodeBlock
	TypeThematicBreak = doctree.TypeThematicBreak
	TypeTable         = doctree.TypeTable
	TypeTableRow      = doctree.TypeTableRow
	TypeTableCell     = doctree.TypeTableCell
	TypeTableHeader   = doctree.TypeTableHeader
	TypeFrontmatter   = doctree.TypeFrontmatter
	TypeMathBlock     = doctree.TypeMathBlock
	TypeMermaidBlock  = doctree.TypeMermaidBlock
	TypeText          = doctree.TypeText
	TypeHardBreak     = doctree.TypeHardBreak
	TypeMathInline    = doctree.TypeMathInline
	TypeImage         = doctree.TypeImage
)

// Mark types.
const (
	MarkBold      = doctree.MarkBold
	MarkItalic    = doctree.MarkItalic
	MarkStrike    = doctree.MarkStrike
	MarkCode      = doctree.MarkCode
	MarkUnderline = doctree.MarkUnderline
	MarkLink      = doctree.MarkLink
	MarkComment   = doctree.MarkComment
)

// FileIndex resolves a file name to a path somewhere in the workspace.
// Implementations must be safe for concurrent reads.
type FileIndex = convert.FileIndex

// FileIndexFunc adapts a function to the FileIndex interface.
type FileIndexFunc = convert.FileIndexFunc

// Input contains the parameters of one Parse call.
type Input struct {
	Markdown  string    // Markdown text, any line endings
	SourceDir string    // Directory of the file, for relative images (optional)
	Index     FileIndex // Workspace lookup (optional, overrides WithFileIndex)
}

// ExportOptions contains the parameters of one ExportHTML call.
type ExportOptions struct {
	Title     string // Page title (optional, defaults to the first heading)
	SourceDir string // Directory relative links resolve against (optional)
	CSS       string // Extra CSS appended after the style (optional)
}

// EncodeJSON renders a tree as editor-compatible JSON.
func EncodeJSON(doc *Node, indent bool) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return doctree.Encode(doc, indent)
}

// DecodeJSON parses a JSON tree. Returns ErrInvalidDocument when the data is
// not a doc tree and ErrUnknownNodeType when a node type is not known.
func DecodeJSON(data []byte) (*Node, error) {
	return doctree.Decode(data)
}
