// Package parse builds aldoc documents from source text.
//
// A document is a sequence of blocks separated by blank lines. A block
// starting with # is a heading, a block starting with a list marker is a
// list, and any other block is a paragraph.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matthewdargan/aldoc/scan"
)

// Document is a parsed aldoc document.
type Document struct {
	Blocks []Block
}

// Block is a top-level unit of a document: a Heading, a Paragraph or a List.
type Block interface {
	block()
}

// Heading is a section title. Level is the number of heading markers.
type Heading struct {
	Level int
	Title string
}

// Paragraph is a block of running text.
type Paragraph struct {
	Text string
}

// List is a sequence of items sharing one marker token.
type List struct {
	Token scan.ListToken
	Items []ListItem
}

// ListItem is an entry of a list, optionally owning a nested list.
type ListItem struct {
	Text string
	List *List
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}

// state is carried from block to block through one parse.
type state struct {
	name  string // name of the input; used only for error reports
	level int    // level of the last heading, 0 before the first
}

// Parse parses aldoc text into a document.
func Parse(text string) (*Document, error) {
	return ParseReader("", strings.NewReader(text))
}

// ParseReader parses the aldoc text read from r. The name is used in error
// reports. The first error aborts the parse and no document is returned.
func ParseReader(name string, r io.Reader) (*Document, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := scan.New(name, br)
	st := &state{name: s.Name()}
	doc := &Document{}
	for t := s.Next(); t.Type != scan.EOF; t = s.Next() {
		b, err := st.parseBlock(t)
		if err != nil {
			return nil, err
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Name(), err)
	}
	return doc, nil
}

// parseBlock classifies and parses one block.
func (st *state) parseBlock(t scan.Token) (Block, error) {
	if t.Type == scan.Heading {
		h := parseHeading(t.Text)
		if h.Level-st.level > 1 {
			return nil, &SkippedHeadingLevelError{Name: st.name, Line: t.Line, From: st.level, To: h.Level}
		}
		st.level = h.Level
		return h, nil
	}
	if l, _, ok := ParseList(t.Text, 0); ok {
		return l, nil
	}
	return Paragraph{Text: Format(strings.TrimSpace(t.Text))}, nil
}

// parseHeading splits a heading block into its level and title.
func parseHeading(text string) Heading {
	c := cursor{input: text}.acceptRun(string(scan.HeadingMarker))
	level := int(c.pos)
	c, _ = c.tag(" ")
	return Heading{Level: level, Title: Format(strings.TrimSpace(c.rest()))}
}
