package parse

import (
	"strings"
	"unicode/utf8"
)

// Pos represents a byte position in the input text.
type Pos int

const eof = -1

// cursor is a read position in an input string. Matching methods return a
// new cursor and leave the receiver untouched, so a failed match needs no
// backup.
type cursor struct {
	input string // the string being parsed
	pos   Pos    // current position in the input
}

// rest returns the unconsumed input.
func (c cursor) rest() string {
	return c.input[c.pos:]
}

// atEOF reports whether all input has been consumed.
func (c cursor) atEOF() bool {
	return int(c.pos) >= len(c.input)
}

// advance skips n bytes.
func (c cursor) advance(n int) cursor {
	c.pos += Pos(n)
	return c
}

// next returns the next rune in the input and the cursor following it.
func (c cursor) next() (rune, cursor) {
	if c.atEOF() {
		return eof, c
	}
	r, w := utf8.DecodeRuneInString(c.rest())
	return r, c.advance(w)
}

// peek returns but does not consume the next rune in the input.
func (c cursor) peek() rune {
	r, _ := c.next()
	return r
}

// tag consumes s if the input continues with it.
func (c cursor) tag(s string) (cursor, bool) {
	if !strings.HasPrefix(c.rest(), s) {
		return c, false
	}
	return c.advance(len(s)), true
}

// count consumes exactly n repetitions of s.
func (c cursor) count(s string, n int) (cursor, bool) {
	next := c
	for i := 0; i < n; i++ {
		var ok bool
		if next, ok = next.tag(s); !ok {
			return c, false
		}
	}
	return next, true
}

// acceptRun consumes a run of runes from the valid set.
func (c cursor) acceptRun(valid string) cursor {
	for {
		r, next := c.next()
		if r == eof || !strings.ContainsRune(valid, r) {
			return c
		}
		c = next
	}
}

// takeUntil consumes input up to, but not including, the first position
// at which stop reports true, or to the end of input.
func (c cursor) takeUntil(stop func(cursor) bool) (string, cursor) {
	start := c.pos
	for !c.atEOF() && !stop(c) {
		_, c = c.next()
	}
	return c.input[start:c.pos], c
}

// nextLine returns the cursor at the start of the following line.
func (c cursor) nextLine() (cursor, bool) {
	i := strings.IndexByte(c.rest(), '\n')
	if i < 0 {
		return c, false
	}
	return c.advance(i + 1), true
}
