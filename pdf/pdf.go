// Package pdf turns LaTeX source into PDF files with an external engine.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/matthewdargan/aldoc/internal/logging"
)

// Engine compiles LaTeX source to the bytes of a PDF file.
type Engine interface {
	Compile(ctx context.Context, source string) ([]byte, error)
}

var (
	// ErrEngine is matched by every *EngineError.
	ErrEngine = errors.New("LaTeX engine failed")
	// ErrFileExists is matched by every *FileExistsError.
	ErrFileExists = errors.New("file exists")
)

// EngineError reports a failed engine run. Diagnostic holds what the
// engine printed.
type EngineError struct {
	Program    string
	Diagnostic string
	Err        error
}

func (e *EngineError) Error() string {
	msg := e.Program + " failed"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Diagnostic != "" {
		msg += "\n" + e.Diagnostic
	}
	return msg
}

func (e *EngineError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEngine}
	}
	return []error{ErrEngine, e.Err}
}

// FileExistsError reports an output file that Save will not replace.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

func (e *FileExistsError) Unwrap() error { return ErrFileExists }

const sourceName = "main.tex"

// writeFile is replaced in tests.
var writeFile = (*os.File).Write

// Command runs a LaTeX engine such as tectonic or latexmk on a source file
// in a scratch directory. The engine must write a PDF named after the
// source next to it.
type Command struct {
	Program string
	Args    []string // passed before the source file name
	Logger  *slog.Logger
}

// Compile writes source to a temporary directory, runs the engine there
// and returns the PDF it produced. The directory is removed afterwards.
func (c *Command) Compile(ctx context.Context, source string) ([]byte, error) {
	log := c.Logger
	if log == nil {
		log = logging.Discard()
	}
	workDir, err := os.MkdirTemp("", "aldoc-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := os.WriteFile(filepath.Join(workDir, sourceName), []byte(source), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write LaTeX source: %w", err)
	}

	args := append(append([]string(nil), c.Args...), sourceName)
	cmd := exec.CommandContext(ctx, c.Program, args...)
	cmd.Dir = workDir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	log.Debug("running LaTeX engine", "program", c.Program, "args", args, "dir", workDir)
	start := time.Now()
	if err := cmd.Run(); err != nil {
		log.Error("LaTeX engine failed", "program", c.Program, "error", err)
		return nil, &EngineError{Program: c.Program, Diagnostic: strings.TrimSpace(out.String()), Err: err}
	}
	log.Debug("LaTeX engine finished", "program", c.Program, "duration_ms", time.Since(start).Milliseconds())

	name := strings.TrimSuffix(sourceName, filepath.Ext(sourceName)) + ".pdf"
	data, err := os.ReadFile(filepath.Join(workDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		log.Error("LaTeX engine wrote no PDF", "program", c.Program)
		return nil, &EngineError{Program: c.Program, Diagnostic: "no " + name + " produced\n" + strings.TrimSpace(out.String())}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return data, nil
}

// Save compiles source with e and writes the result to path. Unless
// overwrite is set, an existing file at path is left alone and a
// *FileExistsError is returned.
func Save(ctx context.Context, e Engine, source, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return &FileExistsError{Path: path}
		}
	}
	data, err := e.Compile(ctx, source)
	if err != nil {
		return err
	}
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flag = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return &FileExistsError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	_, err = writeFile(f, data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// OutputPath returns input with its extension replaced by .pdf.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}
