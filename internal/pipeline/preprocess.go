package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

// Line endings recorded on a parsed document.
const (
	LineEndingLF   = "\n"
	LineEndingCRLF = "\r\n"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Source is the result of preprocessing one document.
type Source struct {
	// Body is the text handed to the generic parser.
	Body []byte
	// Frontmatter is the opaque frontmatter text when HasFrontmatter is set.
	Frontmatter    string
	HasFrontmatter bool
	// Math maps sentinels in Body to the blocks they replaced.
	Math *MathIndex
	// LineEnding is the line ending the original text used.
	LineEnding string
}

// MarkdownPreprocessor defines the contract for rewriting raw document text
// before generic parsing.
type MarkdownPreprocessor interface {
	Preprocess(content string) *Source
}

// Preprocessor applies the text rewrites that run before goldmark.
// It holds no per-call state and is safe for concurrent use.
type Preprocessor struct {
	md     goldmark.Markdown
	images ExtensionSet
}

// NewPreprocessor creates a Preprocessor. md is used to locate code regions
// and should be configured like the parser that consumes the output.
func NewPreprocessor(md goldmark.Markdown, imageExts []string) *Preprocessor {
	if len(imageExts) == 0 {
		imageExts = DefaultImageExtensions
	}
	return &Preprocessor{md: md, images: NewExtensionSet(imageExts)}
}

// Images returns the image extensions the preprocessor recognizes.
func (p *Preprocessor) Images() ExtensionSet {
	return p.images
}

// Preprocess normalizes line endings, extracts frontmatter, replaces math
// blocks with sentinels and rewrites wiki image embeds.
func (p *Preprocessor) Preprocess(content string) *Source {
	src := &Source{LineEnding: DetectLineEnding(content)}

	content = NormalizeLineEndings(content)
	if fm, body, ok := ExtractFrontmatter(content); ok {
		src.Frontmatter = fm
		src.HasFrontmatter = true
		content = body
	}

	src.Math = newMathIndex(content)
	src.Body = []byte(p.rewrite(content, src.Math))
	return src
}

// rewrite performs math extraction and wiki normalization in one pass over
// body, skipping code regions.
func (p *Preprocessor) rewrite(body string, math *MathIndex) string {
	if !strings.Contains(body, "$$") && !strings.Contains(body, "![[") {
		return body
	}
	regions := codeRegions(p.md, []byte(body))

	var b strings.Builder
	b.Grow(len(body))
	pos := 0
	for pos < len(body) {
		next := strings.IndexAny(body[pos:], "$!")
		if next < 0 {
			b.WriteString(body[pos:])
			break
		}
		i := pos + next
		b.WriteString(body[pos:i])
		pos = i

		if r, ok := regionAt(regions, i); ok {
			b.WriteString(body[i:r.stop])
			pos = r.stop
			continue
		}

		switch body[i] {
		case '$':
			if open := mathDelimiter(body, i, regions); open == i {
				if end, sentinel, ok := p.extractMath(body, i, regions, math); ok {
					b.WriteString(sentinel)
					pos = end
					continue
				} else if end > 0 {
					b.WriteString(body[i:end])
					pos = end
					continue
				}
			}
		case '!':
			if out, n := wikiEmbedAt(body[i:], p.images); n > 0 {
				b.WriteString(out)
				pos = i + n
				continue
			}
		}
		b.WriteByte(body[i])
		pos++
	}
	return b.String()
}

// extractMath handles a $$ opening at open. When the block stands alone it
// is recorded in math and its sentinel returned with ok set. Otherwise end
// is the offset just past the closing delimiter so the literal block can be
// copied, or 0 when the block is never closed.
func (p *Preprocessor) extractMath(body string, open int, regions []span, math *MathIndex) (end int, sentinel string, ok bool) {
	closeAt := mathDelimiter(body, open+2, regions)
	if closeAt < 0 {
		return 0, "", false
	}
	end = closeAt + 2
	prefix, standalone := standaloneMath(body, open, end)
	if !standalone {
		return end, "", false
	}
	raw := stripContinuation(body[open+2:closeAt], prefix)
	return end, math.add(raw), true
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// DetectLineEnding reports CRLF when content uses it, LF otherwise.
func DetectLineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// ApplyLineEnding converts LF line endings in content to ending.
func ApplyLineEnding(content, ending string) string {
	if ending != LineEndingCRLF {
		return content
	}
	return strings.ReplaceAll(content, "\n", LineEndingCRLF)
}
