package pipeline

import "regexp"

// frontmatterPattern matches a leading --- fenced block. Only the first
// closing fence counts.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n?(.*)\z`)

// ExtractFrontmatter splits content into its frontmatter body and the rest
// of the document. The frontmatter is returned verbatim and never parsed.
// ok is false when content does not open with a complete fence pair.
func ExtractFrontmatter(content string) (frontmatter, body string, ok bool) {
	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return "", content, false
	}
	return m[1], m[2], true
}
