package assets

import (
	"fmt"
	"strings"
)

// DefaultStyleName is the style applied when an export names none.
const DefaultStyleName = "default"

// AssetLoader loads export styles by name.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name, without the .css extension.
	// Returns ErrStyleNotFound if the style does not exist and
	// ErrInvalidAssetName if the name is not a plain identifier.
	LoadStyle(name string) (string, error)
}

// ValidateAssetName rejects names that could address another file: empty
// names and names holding separators or dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
