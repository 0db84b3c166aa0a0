// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan splits aldoc source text into blocks and recognizes list markers.
package scan

import (
	"fmt"
	"io"
	"strings"
)

// Token represents a block of source text returned from the scanner.
type Token struct {
	Type Type   // The type of this block.
	Line int    // The line number on which this block starts.
	Text string // The text of this block.
}

// Type identifies the type of blocks.
type Type int

const (
	EOF     Type = iota // EOF indicates the end of input
	Heading             // Heading starts with the heading marker
	Text                // Text is a list or a paragraph
)

// HeadingMarker introduces a heading. The length of the run of markers is the heading level.
const HeadingMarker = '#'

var typeName = map[Type]string{
	EOF:     "EOF",
	Heading: "Heading",
	Text:    "Text",
}

func (t Type) String() string {
	if s, ok := typeName[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	r     io.ByteReader // reads input bytes
	done  bool          // are we done scanning?
	err   error         // first read error other than io.EOF
	name  string        // name of the input; used only for error reports
	buf   []byte        // I/O buffer, re-used
	lines []string      // lines of the block being scanned
	line  int           // number of lines read so far
	start int           // line number on which the block starts
	token Token         // token to return to parser
}

// readLine reads the next line of input without its line ending.
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) readLine() (string, bool) {
	if l.done {
		return "", false
	}
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				l.err = err
			}
			l.done = true
			if len(l.buf) == 0 {
				return "", false
			}
			break
		}
		if c == '\n' {
			break
		}
		if c != '\r' {
			l.buf = append(l.buf, c)
		}
	}
	l.line++
	return string(l.buf), true
}

// emit passes a block back to the client.
func (l *Scanner) emit(t Type, text string) stateFn {
	l.token = Token{t, l.start, text}
	return nil
}

// New creates and returns a new scanner.
func New(name string, r io.ByteReader) *Scanner {
	return &Scanner{r: r, name: name}
}

// Name returns the name of the input.
func (l *Scanner) Name() string {
	return l.name
}

// Err returns the first non-EOF error encountered while reading input.
func (l *Scanner) Err() error {
	return l.err
}

// Next returns the next block.
func (l *Scanner) Next() Token {
	l.token = Token{EOF, l.line, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// lexAny skips blank lines and starts the next block.
func lexAny(l *Scanner) stateFn {
	for {
		line, ok := l.readLine()
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}
		l.start = l.line
		l.lines = append(l.lines[:0], line)
		return lexBlock
	}
}

// lexBlock scans lines until a blank line or the end of input.
// Blocks holding nothing but white space are dropped.
func lexBlock(l *Scanner) stateFn {
	for {
		line, ok := l.readLine()
		if !ok || line == "" {
			break
		}
		l.lines = append(l.lines, line)
	}
	text := strings.Join(l.lines, "\n")
	if strings.TrimSpace(text) == "" {
		return lexAny
	}
	if text[0] == HeadingMarker {
		return l.emit(Heading, text)
	}
	return l.emit(Text, text)
}

// Segment splits text into blocks separated by blank lines.
func Segment(text string) []string {
	var blocks []string
	s := New("", strings.NewReader(text))
	for t := s.Next(); t.Type != EOF; t = s.Next() {
		blocks = append(blocks, t.Text)
	}
	return blocks
}
