// Package doctree defines the Document Tree exchanged between the Markdown
// converter, the serializer, and the editing surface.
//
// The tree is a plain value: every parse builds a new one and nothing in this
// package keeps a reference to it afterwards. Its JSON form uses the
// type/attrs/content/text/marks layout common to rich-text editors, so a tree
// can be handed to an editor or stored alongside a revision unchanged.
package doctree
