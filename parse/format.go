package parse

import "strings"

// BoldDelimiter opens and closes a bold span.
const BoldDelimiter = '*'

// collapsible holds the line break and indentation characters that Format
// folds into a single space.
const collapsible = "\r\n\t"

// Format replaces every run of line breaks and tabs in text with a single space.
func Format(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	c := cursor{input: text}
	for !c.atEOF() {
		if strings.ContainsRune(collapsible, c.peek()) {
			c = c.acceptRun(collapsible)
			b.WriteByte(' ')
			continue
		}
		start := c.pos
		_, c = c.next()
		b.WriteString(text[start:c.pos])
	}
	return b.String()
}

// Span is a run of inline text sharing one style.
type Span struct {
	Text string
	Bold bool
}

// Inline splits text into spans at bold delimiters. Each delimiter toggles
// bold. A bold span still open at the end of text is closed there, so every
// bold span, even an empty one, has both ends.
func Inline(text string) []Span {
	var spans []Span
	bold := false
	for {
		i := strings.IndexByte(text, BoldDelimiter)
		if i < 0 {
			break
		}
		if i > 0 || bold {
			spans = append(spans, Span{Text: text[:i], Bold: bold})
		}
		bold = !bold
		text = text[i+1:]
	}
	if text != "" || bold {
		spans = append(spans, Span{Text: text, Bold: bold})
	}
	return spans
}
