package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// MathSentinelPrefix starts every token substituted for a $$ block.
const MathSentinelPrefix = "MATH_BLOCK_"

// maxSentinelDigits bounds the literal tokens considered when numbering.
// Longer numbers cannot collide with the sentinels of a single document.
const maxSentinelDigits = 9

var (
	// mathSentinelPattern finds sentinel tokens left inside text.
	mathSentinelPattern = regexp.MustCompile(MathSentinelPrefix + `\d+`)

	// containerPrefix matches the part of a line that only opens block
	// containers: blockquote markers, list markers and indentation.
	containerPrefix = regexp.MustCompile(`^[ \t]*(?:(?:>[ \t]?|(?:[-*+]|\d{1,9}[.)])[ \t]+)[ \t]*)*$`)
)

// MathBlock is one extracted $$ block.
type MathBlock struct {
	// Raw is the text between the delimiters with container prefixes removed
	// from continuation lines.
	Raw string
	// Latex is Raw trimmed of surrounding whitespace.
	Latex string
}

// MathIndex maps sentinel tokens to the math blocks they replaced.
// It is built for one parse call and discarded afterwards.
type MathIndex struct {
	blocks map[string]MathBlock
	first  int // number of the first sentinel
}

// newMathIndex returns an index whose sentinels are numbered above every
// sentinel-shaped token already present in body, so literal text such as
// "MATH_BLOCK_0" never collides with an extracted block.
func newMathIndex(body string) *MathIndex {
	m := &MathIndex{blocks: make(map[string]MathBlock)}
	if !strings.Contains(body, MathSentinelPrefix) {
		return m
	}
	for _, tok := range mathSentinelPattern.FindAllString(body, -1) {
		digits := strings.TrimPrefix(tok, MathSentinelPrefix)
		if len(digits) > maxSentinelDigits {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err == nil && n >= m.first {
			m.first = n + 1
		}
	}
	return m
}

// add stores a block and returns its sentinel.
func (m *MathIndex) add(raw string) string {
	sentinel := MathSentinelPrefix + strconv.Itoa(m.first+len(m.blocks))
	m.blocks[sentinel] = MathBlock{Raw: raw, Latex: strings.TrimSpace(raw)}
	return sentinel
}

// Len returns the number of extracted blocks.
func (m *MathIndex) Len() int {
	if m == nil {
		return 0
	}
	return len(m.blocks)
}

// Lookup returns the block replaced by sentinel.
func (m *MathIndex) Lookup(sentinel string) (MathBlock, bool) {
	if m == nil {
		return MathBlock{}, false
	}
	b, ok := m.blocks[sentinel]
	return b, ok
}

// Restore puts back the literal $$ source of every known sentinel in s.
// Unknown sentinel-shaped tokens are left alone.
func (m *MathIndex) Restore(s string) string {
	if m.Len() == 0 || !strings.Contains(s, MathSentinelPrefix) {
		return s
	}
	return mathSentinelPattern.ReplaceAllStringFunc(s, func(tok string) string {
		if b, ok := m.blocks[tok]; ok {
			return "$$" + b.Raw + "$$"
		}
		return tok
	})
}

// mathDelimiter finds the next "$$" at or after from outside code regions.
func mathDelimiter(body string, from int, regions []span) int {
	for from < len(body) {
		i := strings.Index(body[from:], "$$")
		if i < 0 {
			return -1
		}
		i += from
		if r, ok := regionAt(regions, i); ok {
			from = r.stop
			continue
		}
		if r, ok := regionAt(regions, i+1); ok {
			from = r.stop
			continue
		}
		return i
	}
	return -1
}

// standaloneMath reports whether the $$ block at body[open:end] is the only
// thing on its lines apart from container markers, and returns the prefix
// continuation lines carry inside those containers.
func standaloneMath(body string, open, end int) (continuation string, ok bool) {
	lineStart := strings.LastIndexByte(body[:open], '\n') + 1
	prefix := body[lineStart:open]
	if !containerPrefix.MatchString(prefix) {
		return "", false
	}
	rest := body[end:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	if strings.TrimSpace(rest) != "" {
		return "", false
	}
	return continuationPrefix(prefix), true
}

// continuationPrefix turns the opening line's container prefix into the
// prefix continuation lines carry: blockquote markers stay, list markers
// become spaces of the same width.
func continuationPrefix(prefix string) string {
	b := []byte(prefix)
	for i, c := range b {
		if c != '>' && c != '\t' {
			b[i] = ' '
		}
	}
	return string(b)
}

// stripContinuation removes the container prefix from every line of raw
// after the first. Blank container lines may carry a shortened prefix.
func stripContinuation(raw, prefix string) string {
	if prefix == "" || !strings.Contains(raw, "\n") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	short := strings.TrimRight(prefix, " \t")
	for i := 1; i < len(lines); i++ {
		switch {
		case strings.HasPrefix(lines[i], prefix):
			lines[i] = lines[i][len(prefix):]
		case strings.TrimRight(lines[i], " \t") == short:
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
