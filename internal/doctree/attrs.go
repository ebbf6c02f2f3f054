package doctree

import (
	"encoding/json"
	"reflect"
)

// Attrs holds type-specific node or mark attributes.
// Values are JSON-compatible: string, bool, numbers, nil and []any.
// Numbers may arrive as float64 after a JSON round trip, so callers should
// read them through Int rather than a type assertion.
type Attrs map[string]any

// String returns the string value of key, or "" when absent or not a string.
func (a Attrs) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Bool returns the boolean value of key, or false when absent.
func (a Attrs) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// Int returns the integer value of key and whether it was present.
func (a Attrs) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	}
	return 0, false
}

// Strings returns a string slice stored under key.
func (a Attrs) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			out[i], _ = e.(string)
		}
		return out
	}
	return nil
}

// Has reports whether key is set to a non-nil value.
func (a Attrs) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// Clone returns a shallow copy of a.
func (a Attrs) Clone() Attrs {
	c := make(Attrs, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Equal reports whether a and b hold the same values.
// A nil map and an empty map are equal.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		if fa, okA := va.(float64); okA {
			if ib, okB := vb.(int); okB && fa == float64(ib) {
				continue
			}
		}
		if ia, okA := va.(int); okA {
			if fb, okB := vb.(float64); okB && float64(ia) == fb {
				continue
			}
		}
		if !reflect.DeepEqual(va, vb) {
			return false
		}
	}
	return true
}
