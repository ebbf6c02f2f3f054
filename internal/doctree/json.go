package doctree

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for tree decoding.
var (
	ErrInvalidDocument = errors.New("invalid document tree")
	ErrUnknownNodeType = errors.New("unknown node type")
)

// MaxDecodeDepth bounds nesting accepted by Decode.
const MaxDecodeDepth = 256

// Encode renders n as JSON. With indent set the output is indented by two
// spaces.
func Encode(n *Node, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(n, "", "  ")
	}
	return json.Marshal(n)
}

// Decode parses a JSON tree and checks that the root is a doc and every
// node type is known.
func Decode(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if n.Type != TypeDoc {
		return nil, fmt.Errorf("%w: root type %q, want %q", ErrInvalidDocument, n.Type, TypeDoc)
	}
	if err := validate(&n, 0); err != nil {
		return nil, err
	}
	return &n, nil
}

func validate(n *Node, depth int) error {
	if n == nil {
		return fmt.Errorf("%w: null node", ErrInvalidDocument)
	}
	if depth > MaxDecodeDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrInvalidDocument, MaxDecodeDepth)
	}
	if !IsKnownType(n.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownNodeType, n.Type)
	}
	for _, c := range n.Content {
		if err := validate(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
