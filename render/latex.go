package render

import (
	"strings"

	"github.com/matthewdargan/aldoc/parse"
	"github.com/matthewdargan/aldoc/scan"
)

// LaTeXConfig controls the typesetting markup written by the LaTeX backend.
type LaTeXConfig struct {
	DocumentClass string   `mapstructure:"document_class" yaml:"document_class"`
	Packages      []string `mapstructure:"packages" yaml:"packages"`
	// Sections holds the sectioning command for each heading level,
	// starting at level 1. Deeper headings use Fallback.
	Sections []string    `mapstructure:"sections" yaml:"sections"`
	Fallback string      `mapstructure:"fallback" yaml:"fallback"`
	Bullet   string      `mapstructure:"bullet" yaml:"bullet"`
	Labels   LabelConfig `mapstructure:"labels" yaml:"labels"`
}

// LabelConfig holds the enumitem counter command of each enumerator.
type LabelConfig struct {
	Numeric    string `mapstructure:"numeric" yaml:"numeric"`
	LowerAlpha string `mapstructure:"lower_alpha" yaml:"lower_alpha"`
	UpperAlpha string `mapstructure:"upper_alpha" yaml:"upper_alpha"`
	LowerRoman string `mapstructure:"lower_roman" yaml:"lower_roman"`
	UpperRoman string `mapstructure:"upper_roman" yaml:"upper_roman"`
}

// For returns the counter command for e.
func (c LabelConfig) For(e scan.Enumerator) string {
	switch e.Kind {
	case scan.Numeric:
		return c.Numeric
	case scan.Alphabetic:
		if e.Upper {
			return c.UpperAlpha
		}
		return c.LowerAlpha
	case scan.Roman:
		if e.Upper {
			return c.UpperRoman
		}
		return c.LowerRoman
	}
	return ""
}

// DefaultLaTeXConfig returns the configuration used when none is given.
func DefaultLaTeXConfig() LaTeXConfig {
	return LaTeXConfig{
		DocumentClass: "report",
		Packages:      []string{"enumitem"},
		Sections: []string{
			"chapter",
			"section",
			"subsection",
			"subsubsection",
			"paragraph",
			"subparagraph",
		},
		Fallback: "textbf",
		Bullet:   `\textbullet`,
		Labels: LabelConfig{
			Numeric:    `\arabic*`,
			LowerAlpha: `\alph*`,
			UpperAlpha: `\Alph*`,
			LowerRoman: `\roman*`,
			UpperRoman: `\Roman*`,
		},
	}
}

// LaTeX renders documents as a complete LaTeX source file.
type LaTeX struct {
	cfg LaTeXConfig
}

// NewLaTeX returns a LaTeX renderer using cfg.
func NewLaTeX(cfg LaTeXConfig) *LaTeX {
	return &LaTeX{cfg: cfg}
}

func (*LaTeX) Backend() Backend { return LaTeXBackend }
func (*LaTeX) sealed()          {}

// Render writes the preamble followed by every block of doc.
func (r *LaTeX) Render(doc *parse.Document) (string, error) {
	var b strings.Builder
	b.WriteString(`\documentclass{` + r.cfg.DocumentClass + "}\n")
	for _, p := range r.cfg.Packages {
		b.WriteString(`\usepackage{` + p + "}\n")
	}
	b.WriteString("\n\\begin{document}\n\n")
	for _, blk := range doc.Blocks {
		switch blk := blk.(type) {
		case parse.Heading:
			b.WriteString(`\` + r.section(blk.Level) + "{")
			r.inline(&b, blk.Title)
			b.WriteString("}\n")
		case parse.Paragraph:
			r.inline(&b, blk.Text)
			b.WriteString("\n")
		case parse.List:
			r.list(&b, blk, 0)
		}
		b.WriteString("\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String(), nil
}

// section returns the command for a heading of the given level.
func (r *LaTeX) section(level int) string {
	if level >= 1 && level <= len(r.cfg.Sections) {
		return r.cfg.Sections[level-1]
	}
	return r.cfg.Fallback
}

func (r *LaTeX) list(b *strings.Builder, l parse.List, depth int) {
	indent := strings.Repeat("  ", depth)
	env := "itemize"
	label := r.cfg.Bullet
	if l.Token.Ordered() {
		env = "enumerate"
		label = l.Token.Label(r.cfg.Labels.For(l.Token.Enumerator))
	}
	b.WriteString(indent + `\begin{` + env + "}")
	if label != "" {
		b.WriteString("[label=" + label + "]")
	}
	b.WriteString("\n")
	for _, item := range l.Items {
		b.WriteString(indent + `  \item`)
		if item.Text != "" {
			b.WriteString(" ")
			r.inline(b, item.Text)
		}
		b.WriteString("\n")
		if item.List != nil {
			r.list(b, *item.List, depth+1)
		}
	}
	b.WriteString(indent + `\end{` + env + "}\n")
}

func (r *LaTeX) inline(b *strings.Builder, text string) {
	writeInline(b, text, Escape, func(s string) string { return `\textbf{` + s + "}" })
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	`[`, `{[}`,
	`]`, `{]}`,
)

// Escape quotes the characters LaTeX treats specially.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}
