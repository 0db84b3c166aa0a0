// Package render writes parsed aldoc documents as LaTeX or plain text.
//
// Both backends walk the document once, top down, and never modify it, so
// rendering the same document twice yields identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/matthewdargan/aldoc/parse"
)

// Backend names an output format.
type Backend int

const (
	LaTeXBackend Backend = iota // typesetting markup for a LaTeX engine
	PlainBackend                // terminal friendly text
)

var backendName = map[Backend]string{
	LaTeXBackend: "latex",
	PlainBackend: "plain",
}

func (b Backend) String() string {
	if s, ok := backendName[b]; ok {
		return s
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend returns the backend with the given name.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "latex", "tex":
		return LaTeXBackend, nil
	case "plain", "text", "txt":
		return PlainBackend, nil
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}

// Renderer turns a document into text. *LaTeX and *Plain are its only
// implementations.
type Renderer interface {
	Render(doc *parse.Document) (string, error)
	Backend() Backend
	sealed()
}

// Options holds the configuration of every backend. New uses the part
// matching the requested backend.
type Options struct {
	LaTeX LaTeXConfig
	Plain PlainConfig
}

// DefaultOptions returns the default configuration of both backends.
func DefaultOptions() Options {
	return Options{LaTeX: DefaultLaTeXConfig(), Plain: DefaultPlainConfig()}
}

// New returns the renderer for backend b.
func New(b Backend, opts Options) (Renderer, error) {
	switch b {
	case LaTeXBackend:
		return NewLaTeX(opts.LaTeX), nil
	case PlainBackend:
		return NewPlain(opts.Plain), nil
	}
	return nil, fmt.Errorf("unknown backend %v", b)
}

// writeInline writes the spans of text. Span text passes through escape
// and bold spans are then wrapped by bold.
func writeInline(b *strings.Builder, text string, escape func(string) string, bold func(string) string) {
	for _, s := range parse.Inline(text) {
		t := escape(s.Text)
		if s.Bold {
			t = bold(t)
		}
		b.WriteString(t)
	}
}

func identity(s string) string { return s }
