package main

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matthewdargan/aldoc/internal/config"
	"github.com/matthewdargan/aldoc/render"
)

func printCmd(a *app) *cobra.Command {
	var (
		format string
		latex  bool
		width  int
		color  string
	)
	cmd := &cobra.Command{
		Use:   "print <input>",
		Short: "Print a document as plain text or LaTeX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			cfg := *a.cfg
			if cmd.Flags().Changed("width") {
				cfg.Plain.Width = width
			}
			if cmd.Flags().Changed("color") {
				cfg.Plain.Color = color
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			isTTY, termWidth := terminal(out)
			backend, err := render.ParseBackend(format)
			if err != nil {
				return err
			}
			if latex {
				backend = render.LaTeXBackend
			}
			r, err := render.New(backend, cfg.RenderOptions(colorProfile(cfg.Plain.Color, isTTY), termWidth))
			if err != nil {
				return err
			}
			s, err := r.Render(doc)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, s)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", render.PlainBackend.String(), "output format: plain or latex")
	cmd.Flags().BoolVar(&latex, "latex", false, "shorthand for --format latex")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap plain text at this many columns (0 fits the terminal, -1 never wraps)")
	cmd.Flags().StringVar(&color, "color", config.ColorAuto, "style bold text: auto, always or never")
	return cmd
}

// terminal reports whether w is a terminal and its width in columns.
func terminal(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 0
	}
	return true, width
}

// colorProfile picks the profile used for bold text in plain output.
func colorProfile(mode string, isTTY bool) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI
	case config.ColorAuto:
		if isTTY {
			return termenv.EnvColorProfile()
		}
	}
	return termenv.Ascii
}
