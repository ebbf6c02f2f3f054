// Package mdtree converts Markdown text to a structured document tree and
// back without losing a byte.
//
// # Quick Start
//
// Parse a document, edit the tree, serialize it again:
//
//	doc := mdtree.Parse("# Title\n\nHello **world**.", "", nil)
//	text := mdtree.Serialize(doc)
//	// text == "# Title\n\nHello **world**.\n"
//
// Parsing is total: malformed input never fails, it degrades to literal
// text. Serializing a parsed tree and parsing the result again yields the
// same tree, so editors can round-trip user files safely.
//
// # Extensions
//
// Besides CommonMark and GFM tables, strikethrough and task lists, the tree
// understands:
//
//   - YAML frontmatter, kept as opaque text
//   - $$ math blocks and $ inline math
//   - fenced mermaid diagrams
//   - wiki image embeds (![[pic.png]] and ![[pic.png|alt]])
//   - comment markers (<mark>text</mark><sup>[c1]</sup>) anchoring external
//     comment threads to a span
//
// # Images
//
// Image sources are resolved against a caller-supplied FileIndex (searched
// by base name across the workspace) and the directory of the current file.
// The literal source is kept in the originalSrc attribute, so serialization
// writes back exactly what the user typed:
//
//	conv, err := mdtree.NewConverter(mdtree.WithFileIndex(index))
//	doc := conv.Parse(mdtree.Input{Markdown: text, SourceDir: dir})
//
// # Export
//
// ExportHTML renders a tree to a standalone HTML page with highlighted code
// and an embedded stylesheet:
//
//	html, err := conv.ExportHTML(ctx, doc, mdtree.ExportOptions{SourceDir: dir})
//
// Use WithStyle to pick a built-in style ("default", "technical"), a CSS file
// or inline CSS, and WithAssetLoader to load styles from elsewhere.
//
// # Concurrency
//
// A Converter holds no per-call state. Parse, Serialize and ExportHTML may
// be called from multiple goroutines.
package mdtree
