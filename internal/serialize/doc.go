// Package serialize writes a Document Tree back to Markdown.
//
// Output is canonical: parsing it and serializing again yields the same
// text. Text leaves carry the raw source of the span they came from,
// escapes included, so they are written verbatim and never re-escaped.
//
// Inline marks nest in a fixed order from the outside in: link, bold,
// italic, strike, underline, commentMark. Code is always innermost. When a
// mark spans several leaves it is kept open across them, and among marks
// opening at the same leaf the one running longest is opened first.
package serialize
