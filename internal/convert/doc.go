// Package convert turns a goldmark syntax tree into a Document Tree.
//
// Block and inline conversion are two mutually recursive functions over the
// immutable goldmark tree. Inline conversion first flattens sibling nodes
// into tokens (merged text, raw HTML tags, other nodes) so that multi-node
// patterns such as comment markers can be matched with bounded lookahead.
//
// After conversion, math sentinels are replaced by mathBlock nodes and image
// sources are resolved through a caller-supplied FileIndex. Nothing here
// performs I/O, and malformed input only ever degrades to literal text.
package convert
