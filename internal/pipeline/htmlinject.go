package pipeline

import (
	"context"
	"strings"
)

// CSSInjector adds the export stylesheet to rendered HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection writes the stylesheet as one <style> element. A page from
// ToHTML gets it at the end of <head>; a body-only page gets it at the top
// of <body>; a bare fragment gets it in front.
type CSSInjection struct{}

// InjectCSS returns page with css embedded. Empty css and a cancelled
// context leave page unchanged.
func (*CSSInjection) InjectCSS(ctx context.Context, page, css string) string {
	if css == "" || ctx.Err() != nil {
		return page
	}
	at := styleAnchor(page)
	return page[:at] + "<style>" + escapeStyleText(css) + "</style>" + page[at:]
}

// styleAnchor returns the byte offset where the <style> element goes.
// Tags are matched case-insensitively.
func styleAnchor(page string) int {
	lower := strings.ToLower(page)
	if i := strings.Index(lower, "</head>"); i >= 0 {
		return i
	}
	if i := strings.Index(lower, "<body"); i >= 0 {
		if end := strings.IndexByte(page[i:], '>'); end >= 0 {
			return i + end + 1
		}
	}
	return 0
}

// escapeStyleText rewrites "</" so user CSS cannot end the <style> element.
func escapeStyleText(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
