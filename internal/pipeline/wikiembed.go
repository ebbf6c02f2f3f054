package pipeline

import (
	"path"
	"regexp"
	"strings"
)

// WikiEmbedFragment is appended to the destination of a rewritten wiki
// embed so the image resolver can tell it apart from an ordinary image.
const WikiEmbedFragment = "#wiki-embed"

// DefaultImageExtensions lists the file extensions treated as images.
var DefaultImageExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".bmp", ".ico", ".avif", ".tif", ".tiff",
}

// wikiEmbedPattern matches ![[target]] and ![[target|alt]] at the start of
// the input. The target cannot hold characters that would break a pointy
// bracket destination.
var wikiEmbedPattern = regexp.MustCompile(`\A!\[\[([^\]|<>\n]+)(?:\|([^\]\n]*))?\]\]`)

// ExtensionSet is a lowercase set of file extensions including the dot.
type ExtensionSet map[string]bool

// NewExtensionSet builds a set from extensions, accepting them with or
// without a leading dot and in any case.
func NewExtensionSet(exts []string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

// IsImage reports whether name ends with one of the extensions.
func (s ExtensionSet) IsImage(name string) bool {
	return s[strings.ToLower(path.Ext(name))]
}

// wikiEmbedAt tries to rewrite a wiki image embed at the start of s.
// It returns the replacement and the number of bytes consumed; n is 0 when
// s does not start with an embed. Embeds whose target is not an image are
// consumed and copied unchanged so they are not rescanned.
func wikiEmbedAt(s string, images ExtensionSet) (out string, n int) {
	m := wikiEmbedPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return "", 0
	}
	whole := s[:m[1]]
	target := strings.TrimSpace(s[m[2]:m[3]])
	if target == "" || !images.IsImage(target) {
		return whole, m[1]
	}
	alt := ""
	if m[4] >= 0 {
		alt = s[m[4]:m[5]]
	}
	return "![" + alt + "](<" + target + WikiEmbedFragment + ">)", m[1]
}
