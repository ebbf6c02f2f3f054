// Package yamlutil is the single YAML entry point of the module. Config
// files are decoded strictly, frontmatter leniently, and parse output in
// YAML form is encoded here.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps the bytes accepted by the decoders. Config files and
// frontmatter blocks are far below it.
const MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")

	// ErrDecode wraps every syntax or schema error reported by the decoder.
	ErrDecode = errors.New("yamlutil: decode failed")
)

// Unmarshal decodes frontmatter-style input. Keys without a matching
// field in v are dropped.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes config-style input. A key without a matching
// field in v is an error, so typos in a config file surface at load time.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		// FormatError keeps the line:column prefix without the source excerpt.
		return fmt.Errorf("%w: %s", ErrDecode, yaml.FormatError(err, false, false))
	}
	return nil
}

// Marshal encodes v for `mdtree parse --format yaml`. Fields without a
// yaml tag fall back to their json tag, so tree nodes keep the keys of
// their JSON form.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: encode %T: %w", v, err)
	}
	return out, nil
}
