package mdtree

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdtree/internal/assets"
	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/pipeline"
	"github.com/alnah/go-mdtree/internal/serialize"
)

// ExportHTML renders doc to a standalone HTML page.
//
// The tree is serialized with images pointing at their resolved files,
// comment markers become plain <mark> highlights, code blocks are
// highlighted, relative links are rewritten against opts.SourceDir and the
// converter's style is embedded. Frontmatter is not exported.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) ExportHTML(ctx context.Context, doc *Node, opts ExportOptions) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, r)
		}
	}()

	if doc == nil {
		return nil, ErrNilDocument
	}

	body := exportable(doc)
	mdContent := serialize.Markdown(body, serialize.Options{ResolvedImages: true})

	// Comment markers travel through goldmark as placeholders so raw HTML
	// can stay disabled.
	mdContent = pipeline.MarkersToPlaceholders(mdContent)

	title := opts.Title
	if title == "" {
		title = firstHeading(body)
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent, title)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if opts.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, opts.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	// Style first, caller CSS last so it can override.
	cssContent, err := c.styleCSS()
	if err != nil {
		return nil, err
	}
	if opts.CSS != "" {
		cssContent += "\n" + opts.CSS
	}

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return []byte(htmlContent), nil
}

// styleCSS returns the configured style, or the default style when none
// was configured.
func (c *Converter) styleCSS() (string, error) {
	if c.cfg.resolvedStyle != "" {
		return c.cfg.resolvedStyle, nil
	}
	css, err := c.assetLoader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", assets.DefaultStyleName, convertAssetError(err))
	}
	return css, nil
}

// exportable returns doc without its frontmatter block. doc is not modified.
func exportable(doc *Node) *Node {
	out := &Node{Type: doc.Type, Attrs: doc.Attrs}
	for _, block := range doc.Content {
		if block.Type != doctree.TypeFrontmatter {
			out.Content = append(out.Content, block)
		}
	}
	return out
}

// firstHeading returns the text of the first heading, or "".
func firstHeading(doc *Node) string {
	for _, h := range doctree.Find(doc, doctree.TypeHeading) {
		if title := strings.TrimSpace(h.TextContent()); title != "" {
			return title
		}
	}
	return ""
}
