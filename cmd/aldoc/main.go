// Command aldoc converts aldoc markup to PDF, LaTeX or plain text.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/matthewdargan/aldoc/internal/config"
	"github.com/matthewdargan/aldoc/internal/logging"
	"github.com/matthewdargan/aldoc/parse"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds state shared by every command once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aldoc",
		Short: "Typeset aldoc documents",
		Long: `aldoc reads a small markup language of headings, paragraphs, bold
text and nested lists, and writes it as a PDF, LaTeX source or plain text.

Examples:
  aldoc compile notes.ald              # writes notes.pdf
  aldoc compile notes.ald out.pdf --overwrite
  aldoc print notes.ald                # plain text on the terminal
  aldoc print --latex notes.ald > notes.tex
  aldoc check notes.ald
  cat notes.ald | aldoc print -`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/aldoc/"+config.FileName+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(compileCmd(a))
	root.AddCommand(printCmd(a))
	root.AddCommand(checkCmd(a))
	root.AddCommand(configCmd(a))
	return root
}

// init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), level, format)
	return nil
}

// readDocument parses the named input. The name "-" reads standard input.
func readDocument(cmd *cobra.Command, name string) (*parse.Document, error) {
	var r io.Reader
	if name == "-" {
		name = "<stdin>"
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return parse.ParseReader(name, r)
}
