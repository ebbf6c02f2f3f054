package convert

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdtree/internal/doctree"
	"github.com/alnah/go-mdtree/internal/logger"
	"github.com/alnah/go-mdtree/internal/pipeline"
)

// ImageResolver turns image sources into displayable file URLs while
// keeping the literal source for serialization.
type ImageResolver struct {
	// SourceDir is the directory of the current file. Empty disables
	// resolution relative to it.
	SourceDir string
	// Index is searched by base name before SourceDir. Nil skips it.
	Index FileIndex
	// Logger receives resolution events. Nil discards.
	Logger *logger.Logger
}

// Resolve rewrites every image under doc in place.
func (r *ImageResolver) Resolve(doc *doctree.Node) {
	log := logger.OrDiscard(r.Logger)
	for _, img := range doctree.Find(doc, doctree.TypeImage) {
		src := img.Attrs.String(doctree.AttrSrc)
		if target, ok := strings.CutSuffix(src, pipeline.WikiEmbedFragment); ok {
			r.resolveWiki(img, target, log)
			continue
		}
		if pipeline.IsRelativePath(src) {
			r.resolveRelative(img, src, log)
		}
	}
}

// resolveWiki handles ![[target]] embeds, which only ever resolve through
// the workspace index.
func (r *ImageResolver) resolveWiki(img *doctree.Node, target string, log *logger.Logger) {
	img.Attrs[doctree.AttrWikiEmbed] = true
	img.Attrs[doctree.AttrOriginalSrc] = target
	img.Attrs[doctree.AttrSrc] = target

	if p, ok := r.lookup(path.Base(target)); ok {
		img.Attrs[doctree.AttrFilePath] = p
		img.Attrs[doctree.AttrSrc] = displayRef(p)
		log.ImageResolved(target, p)
		return
	}
	log.ImageUnresolved(target, true)
}

// resolveRelative searches the workspace by base name first, then falls
// back to the directory of the current file.
func (r *ImageResolver) resolveRelative(img *doctree.Node, src string, log *logger.Logger) {
	img.Attrs[doctree.AttrOriginalSrc] = src

	decoded, err := url.PathUnescape(src)
	if err != nil {
		decoded = src
	}
	decoded = stripQuery(decoded)

	if p, ok := r.lookup(path.Base(decoded)); ok {
		img.Attrs[doctree.AttrFilePath] = p
		img.Attrs[doctree.AttrSrc] = displayRef(p)
		log.ImageResolved(src, p)
		return
	}
	if r.SourceDir != "" {
		p := filepath.Join(r.SourceDir, filepath.FromSlash(decoded))
		img.Attrs[doctree.AttrFilePath] = p
		img.Attrs[doctree.AttrSrc] = displayRef(p)
		log.ImageResolved(src, p)
		return
	}
	log.ImageUnresolved(src, false)
}

func (r *ImageResolver) lookup(name string) (string, bool) {
	if r.Index == nil || name == "" || name == "." || name == "/" {
		return "", false
	}
	return r.Index.Lookup(name)
}

// displayRef returns the reference an editing surface loads p from.
func displayRef(p string) string {
	if filepath.IsAbs(p) {
		return pipeline.PathToFileURL(p)
	}
	return filepath.ToSlash(p)
}

// stripQuery drops a query or fragment suffix from a local path.
func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}
