package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They pass
// through goldmark untouched, so comment markers and underlines can become
// HTML after rendering without enabling raw HTML.
const (
	MarkStartPlaceholder      = "\uE000"
	MarkEndPlaceholder        = "\uE001"
	UnderlineStartPlaceholder = "\uE002"
	UnderlineEndPlaceholder   = "\uE003"
)

var (
	// commentMarkerPattern matches <mark>...</mark><sup>[cN]</sup>.
	commentMarkerPattern = regexp.MustCompile(`(?s)<mark>(.*?)</mark><sup>\[c\d+\]</sup>`)

	// bareMarkPattern matches <mark>...</mark> without a comment suffix.
	bareMarkPattern = regexp.MustCompile(`(?s)<mark>(.*?)</mark>`)

	// underlinePattern matches <u>...</u>.
	underlinePattern = regexp.MustCompile(`(?s)<u>(.*?)</u>`)
)

// MarkersToPlaceholders replaces comment markers, bare highlights and
// underlines with placeholder characters. The comment id suffix is dropped:
// exported documents show the highlight, not the thread reference.
func MarkersToPlaceholders(content string) string {
	if !strings.Contains(content, "<") {
		return content
	}
	content = commentMarkerPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	content = bareMarkPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	return underlinePattern.ReplaceAllString(content, UnderlineStartPlaceholder+"$1"+UnderlineEndPlaceholder)
}

// placeholderReplacer turns placeholders back into tags.
var placeholderReplacer = strings.NewReplacer(
	MarkStartPlaceholder, "<mark>",
	MarkEndPlaceholder, "</mark>",
	UnderlineStartPlaceholder, "<u>",
	UnderlineEndPlaceholder, "</u>",
)

// ConvertMarkPlaceholders converts placeholder characters to HTML tags.
// Called after goldmark rendering.
func ConvertMarkPlaceholders(content string) string {
	return placeholderReplacer.Replace(content)
}
