// Package pipeline implements the text stages around the generic Markdown
// parser.
//
// Before parsing, Preprocess rewrites syntax goldmark does not understand:
//   - line ending normalization (CRLF is remembered and restored later)
//   - frontmatter extraction (kept opaque, never parsed)
//   - $$ math block extraction into sentinel tokens
//   - wiki image embeds rewritten to canonical image syntax
//
// Fenced code, indented code and inline code spans are left untouched by
// every rewrite.
//
// For HTML export the package renders Markdown through goldmark with
// syntax highlighting, converts comment markers to <mark> highlights without
// enabling raw HTML, rewrites relative paths and injects a stylesheet.
package pipeline
