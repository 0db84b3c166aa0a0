package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matthewdargan/aldoc/pdf"
	"github.com/matthewdargan/aldoc/render"
)

func compileCmd(a *app) *cobra.Command {
	var (
		overwrite bool
		engine    string
	)
	cmd := &cobra.Command{
		Use:   "compile <input> [output]",
		Short: "Typeset a document as a PDF file",
		Long: `Compile renders a document as LaTeX and runs a LaTeX engine on it.

The output defaults to the input path with a .pdf extension. An existing
output file is kept unless --overwrite is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			var output string
			switch {
			case len(args) == 2:
				output = args[1]
			case input == "-":
				return errors.New("an output path is required when reading standard input")
			default:
				output = pdf.OutputPath(input)
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = a.cfg.PDF.Overwrite
			}
			if engine == "" {
				engine = a.cfg.PDF.Program
			}

			doc, err := readDocument(cmd, input)
			if err != nil {
				return err
			}
			r, err := render.New(render.LaTeXBackend, a.cfg.RenderOptions(termenv.Ascii, 0))
			if err != nil {
				return err
			}
			source, err := r.Render(doc)
			if err != nil {
				return err
			}
			e := &pdf.Command{Program: engine, Args: a.cfg.PDF.Args, Logger: a.log}
			if err := pdf.Save(cmd.Context(), e, source, output, overwrite); err != nil {
				return err
			}
			info, err := os.Stat(output)
			if err != nil {
				return err
			}
			a.log.Info("wrote PDF", "input", input, "output", output, "bytes", info.Size())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", output, humanize.Bytes(uint64(info.Size())))
			return err
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing output file")
	cmd.Flags().StringVar(&engine, "engine", "", "LaTeX engine program (default from config)")
	return cmd
}
