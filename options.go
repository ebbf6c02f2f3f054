package mdtree

import (
	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdtree/internal/logger"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	imageExts     []string
	index         FileIndex
	styleInput    string
	assetPath     string
	resolvedStyle string
}

// WithLogger sends debug events (degraded markers, image resolution) to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = &logger.Logger{Logger: l}
		}
	}
}

// WithFileIndex sets the workspace lookup used when Input.Index is nil.
func WithFileIndex(index FileIndex) Option {
	return func(c *Converter) {
		c.cfg.index = index
	}
}

// WithImageExtensions sets the file extensions that make ![[target]] an
// image embed. Extensions may carry a leading dot and are matched without
// regard to case.
// Panics if exts is empty (programmer error).
func WithImageExtensions(exts ...string) Option {
	if len(exts) == 0 {
		panic("mdtree: WithImageExtensions needs at least one extension")
	}
	return func(c *Converter) {
		c.cfg.imageExts = append([]string(nil), exts...)
	}
}

// WithStyle sets the export stylesheet. The value is a style name
// ("default", "technical"), a path to a CSS file, or inline CSS.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithAssetPath loads styles from {path}/styles/{name}.css, falling back to
// the built-in styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader loads styles through loader instead of the built-in
// styles. It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}
