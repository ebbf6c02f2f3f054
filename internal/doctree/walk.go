package doctree

// WalkFunc is called for every node during Walk. Returning false skips the
// node's children.
type WalkFunc func(n *Node) bool

// Walk visits n and its descendants depth-first in document order.
func Walk(n *Node, fn WalkFunc) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Content {
		Walk(c, fn)
	}
}

// Find returns every node under root whose type is one of types.
func Find(root *Node, types ...string) []*Node {
	var found []*Node
	Walk(root, func(n *Node) bool {
		for _, t := range types {
			if n.Type == t {
				found = append(found, n)
				break
			}
		}
		return true
	})
	return found
}
