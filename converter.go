package mdtree

import (
	"fmt"
	"os"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-mdtree/internal/assets"
	"github.com/alnah/go-mdtree/internal/convert"
	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/fileutil"
	"github.com/alnah/go-mdtree/internal/logger"
	"github.com/alnah/go-mdtree/internal/pipeline"
	"github.com/alnah/go-mdtree/internal/serialize"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter parses Markdown into Document Trees, serializes trees back to
// Markdown and exports them to HTML.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	log               *logger.Logger
	md                goldmark.Markdown
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
}

// publicToInternalAdapter wraps public AssetLoader to internal assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

// NewConverter creates a Converter.
// Use options to customize behavior (e.g., WithFileIndex, WithStyle).
// Returns error if the asset path is invalid or the style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		log:           logger.Discard(),
		md:            pipeline.NewMarkdown(),
		assetLoader:   assets.NewEmbeddedLoader(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.preprocessor = pipeline.NewPreprocessor(c.md, c.cfg.imageExts)

	// A caller-supplied loader replaces the asset path, which is then
	// neither opened nor validated.
	switch {
	case c.publicAssetLoader != nil:
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	case c.cfg.assetPath != "":
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Parse converts Markdown to a Document Tree. It never fails: constructs it
// cannot interpret degrade to literal text. If conversion panics, the whole
// input is returned as the text of a single paragraph.
func (c *Converter) Parse(input Input) (doc *Node) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("parse failed, keeping raw text", "panic", r)
			doc = rawDocument(input.Markdown)
		}
	}()

	index := input.Index
	if index == nil {
		index = c.cfg.index
	}

	src := c.preprocessor.Preprocess(input.Markdown)
	root := pipeline.ParseTree(c.md, src.Body)
	return convert.Document(src, root, convert.Options{
		SourceDir: input.SourceDir,
		Index:     index,
		Logger:    c.log,
	})
}

// Serialize converts a Document Tree to Markdown. Output ends with a single
// newline, or is empty for an empty document. A nil tree, or one that makes
// serialization panic, yields "".
func (c *Converter) Serialize(doc *Node) (out string) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("serialize failed", "panic", r)
			out = ""
		}
	}()
	return serialize.Markdown(doc, serialize.Options{})
}

// rawDocument wraps text in a document holding one paragraph.
func rawDocument(text string) *Node {
	if text == "" {
		return doctree.NewDoc(doctree.NewParagraph())
	}
	return doctree.NewDoc(doctree.NewParagraph(doctree.NewText(text)))
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter after options are applied and the asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil // default style loaded on first export
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// defaultConverter backs the package-level Parse and Serialize.
var defaultConverter = sync.OnceValue(func() *Converter {
	c, err := NewConverter()
	if err != nil {
		// Without options nothing is loaded, so this cannot happen.
		panic("mdtree: default converter: " + err.Error())
	}
	return c
})

// Parse converts Markdown to a Document Tree with the default converter.
// sourceDir and index may be empty and nil.
func Parse(text, sourceDir string, index FileIndex) *Node {
	return defaultConverter().Parse(Input{Markdown: text, SourceDir: sourceDir, Index: index})
}

// Serialize converts a Document Tree to Markdown with the default converter.
func Serialize(doc *Node) string {
	return defaultConverter().Serialize(doc)
}
