package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/muesli/termenv"
)

// isolate points the config search path at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	data := `
latex:
  document_class: article
  sections: [section, subsection]
  labels:
    numeric: '\Roman*'
plain:
  width: 60
  keep_wrappers: true
pdf:
  program: latexmk
  args: [-pdf, -interaction=nonstopmode]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.LaTeX.DocumentClass = "article"
	want.LaTeX.Sections = []string{"section", "subsection"}
	want.LaTeX.Labels.Numeric = `\Roman*`
	want.Plain.Width = 60
	want.Plain.KeepWrappers = true
	want.PDF.Program = "latexmk"
	want.PDF.Args = []string{"-pdf", "-interaction=nonstopmode"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSearchPath(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "aldoc"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "aldoc", FileName), []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ALDOC_PLAIN_WIDTH", "72")
	t.Setenv("ALDOC_PLAIN_COLOR", "never")
	t.Setenv("ALDOC_PDF_PROGRAM", "xelatex")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Plain.Width != 72 || cfg.Plain.Color != ColorNever || cfg.PDF.Program != "xelatex" {
		t.Errorf("environment not applied: %+v %+v", cfg.Plain, cfg.PDF)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load succeeded for a missing explicit file")
	}
	tests := []struct {
		data string
		want string
	}{
		{"plain:\n  color: sometimes\n", "plain.color"},
		{"plain:\n  width: -5\n", "plain.width: -5 must be -1 or greater"},
		{"log:\n  level: loud\n", "log.level"},
		{"log:\n  format: xml\n", "log.format"},
		{"pdf:\n  program: ''\n", "pdf.program"},
	}
	for i, test := range tests {
		path := filepath.Join(dir, "bad"+string(rune('a'+i))+".yaml")
		if err := os.WriteFile(path, []byte(test.data), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("Load(%q) error = %v, want it to mention %s", test.data, err, test.want)
		}
	}
}

func TestValidateWidth(t *testing.T) {
	tests := []struct {
		width int
		ok    bool
	}{
		{80, true},
		{0, true},
		{-1, true},
		{-2, false},
	}
	for _, test := range tests {
		cfg := Default()
		cfg.Plain.Width = test.width
		err := cfg.Validate()
		if (err == nil) != test.ok {
			t.Errorf("width %d: Validate = %v, want ok %v", test.width, err, test.ok)
		}
		if err != nil && !strings.Contains(err.Error(), "must be -1 or greater") {
			t.Errorf("width %d: error %q does not state the bound", test.width, err)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", FileName)
	cfg := Default()
	cfg.Plain.Width = 100
	cfg.LaTeX.Bullet = `\textendash`
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("written config mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOptions(t *testing.T) {
	tests := []struct {
		width    int
		terminal int
		want     int
	}{
		{0, 80, 80},
		{0, 0, 0},
		{-1, 80, 0},
		{50, 80, 50},
	}
	for _, test := range tests {
		cfg := Default()
		cfg.Plain.Width = test.width
		opts := cfg.RenderOptions(termenv.Ascii, test.terminal)
		if opts.Plain.Width != test.want {
			t.Errorf("width %d on a %d column terminal = %d, want %d", test.width, test.terminal, opts.Plain.Width, test.want)
		}
		if opts.LaTeX.DocumentClass != cfg.LaTeX.DocumentClass {
			t.Errorf("LaTeX settings not carried over")
		}
	}
}
