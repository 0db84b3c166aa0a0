package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/matthewdargan/aldoc/parse"
)

// PlainConfig controls the plain text backend.
type PlainConfig struct {
	// Width wraps paragraphs and list items to the given number of
	// columns. Zero disables wrapping.
	Width int
	// KeepWrappers writes ordered list labels with the wrapper of the
	// source marker instead of a period.
	KeepWrappers bool
	// Profile styles bold spans. termenv.Ascii drops bold markup.
	Profile termenv.Profile
}

// DefaultPlainConfig returns unwrapped, unstyled output settings.
func DefaultPlainConfig() PlainConfig {
	return PlainConfig{Profile: termenv.Ascii}
}

// Plain renders documents as readable text.
type Plain struct {
	cfg PlainConfig
}

// NewPlain returns a plain text renderer using cfg.
func NewPlain(cfg PlainConfig) *Plain {
	return &Plain{cfg: cfg}
}

func (*Plain) Backend() Backend { return PlainBackend }
func (*Plain) sealed()          {}

// Render writes the blocks of doc separated by blank lines. It fails if a
// list has more items than its enumerator can number.
func (r *Plain) Render(doc *parse.Document) (string, error) {
	var b strings.Builder
	for i, blk := range doc.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		switch blk := blk.(type) {
		case parse.Heading:
			b.WriteString(strings.Repeat("#", blk.Level) + " " + r.inline(blk.Title) + "\n")
		case parse.Paragraph:
			b.WriteString(r.wrap(r.inline(blk.Text), 0) + "\n")
		case parse.List:
			if err := r.list(&b, blk, 0); err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

func (r *Plain) list(b *strings.Builder, l parse.List, depth int) error {
	indent := strings.Repeat("  ", depth)
	for i, item := range l.Items {
		label, err := r.label(l, i+1)
		if err != nil {
			return err
		}
		prefix := indent + label + " "
		line := prefix + r.wrap(r.inline(item.Text), runewidth.StringWidth(prefix))
		b.WriteString(strings.TrimRight(line, " ") + "\n")
		if item.List != nil {
			if err := r.list(b, *item.List, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// label returns the marker written before the item at index.
func (r *Plain) label(l parse.List, index int) (string, error) {
	if !l.Token.Ordered() {
		return "-", nil
	}
	enum, err := Ordinal(l.Token.Enumerator, index)
	if err != nil {
		return "", err
	}
	if r.cfg.KeepWrappers {
		return l.Token.Label(enum), nil
	}
	return enum + ".", nil
}

func (r *Plain) inline(text string) string {
	var b strings.Builder
	writeInline(&b, text, identity, r.bold)
	return b.String()
}

func (r *Plain) bold(s string) string {
	if r.cfg.Profile == termenv.Ascii || s == "" {
		return s
	}
	return r.cfg.Profile.String(s).Bold().String()
}

// wrap breaks s to the configured width less hang columns, indenting
// continuation lines by hang spaces.
func (r *Plain) wrap(s string, hang int) string {
	if r.cfg.Width <= 0 {
		return s
	}
	w := wordwrap.String(s, max(r.cfg.Width-hang, 1))
	return strings.ReplaceAll(w, "\n", "\n"+strings.Repeat(" ", hang))
}
