// Package config loads aldoc settings from a YAML file, ALDOC_* environment
// variables and built in defaults, in decreasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/matthewdargan/aldoc/internal/logging"
	"github.com/matthewdargan/aldoc/render"
)

// FileName is the base name of the config file searched for by Load.
const FileName = "aldoc.yaml"

// Config is the complete aldoc configuration.
type Config struct {
	LaTeX render.LaTeXConfig `mapstructure:"latex" yaml:"latex"`
	Plain PlainConfig        `mapstructure:"plain" yaml:"plain"`
	PDF   PDFConfig          `mapstructure:"pdf" yaml:"pdf"`
	Log   LogConfig          `mapstructure:"log" yaml:"log"`
}

// PlainConfig configures plain text output.
type PlainConfig struct {
	Width        int    `mapstructure:"width" yaml:"width"`                 // 0 wraps to the terminal, -1 never wraps
	Color        string `mapstructure:"color" yaml:"color"`                 // auto, always or never
	KeepWrappers bool   `mapstructure:"keep_wrappers" yaml:"keep_wrappers"` // keep ) and - after ordinals
}

// PDFConfig configures the LaTeX engine used to produce PDF files.
type PDFConfig struct {
	Program   string   `mapstructure:"program" yaml:"program"`
	Args      []string `mapstructure:"args" yaml:"args"`
	Overwrite bool     `mapstructure:"overwrite" yaml:"overwrite"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Color modes of PlainConfig.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		LaTeX: render.DefaultLaTeXConfig(),
		Plain: PlainConfig{Color: ColorAuto},
		PDF: PDFConfig{
			Program: "tectonic",
			Args:    []string{"--chatter", "minimal"},
		},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads the config file at path. An empty path searches for FileName
// in the user config directory and the working directory, and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("ALDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("latex.document_class", d.LaTeX.DocumentClass)
	v.SetDefault("latex.packages", d.LaTeX.Packages)
	v.SetDefault("latex.sections", d.LaTeX.Sections)
	v.SetDefault("latex.fallback", d.LaTeX.Fallback)
	v.SetDefault("latex.bullet", d.LaTeX.Bullet)
	v.SetDefault("latex.labels.numeric", d.LaTeX.Labels.Numeric)
	v.SetDefault("latex.labels.lower_alpha", d.LaTeX.Labels.LowerAlpha)
	v.SetDefault("latex.labels.upper_alpha", d.LaTeX.Labels.UpperAlpha)
	v.SetDefault("latex.labels.lower_roman", d.LaTeX.Labels.LowerRoman)
	v.SetDefault("latex.labels.upper_roman", d.LaTeX.Labels.UpperRoman)
	v.SetDefault("plain.width", d.Plain.Width)
	v.SetDefault("plain.color", d.Plain.Color)
	v.SetDefault("plain.keep_wrappers", d.Plain.KeepWrappers)
	v.SetDefault("pdf.program", d.PDF.Program)
	v.SetDefault("pdf.args", d.PDF.Args)
	v.SetDefault("pdf.overwrite", d.PDF.Overwrite)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate reports the first setting that holds an unusable value.
func (c *Config) Validate() error {
	switch c.Plain.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("plain.color: %q is not auto, always or never", c.Plain.Color)
	}
	if c.Plain.Width < -1 {
		return fmt.Errorf("plain.width: %d must be -1 or greater", c.Plain.Width)
	}
	if c.PDF.Program == "" {
		return errors.New("pdf.program is empty")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}

// RenderOptions returns the renderer settings of c. Bold spans in plain
// output use profile, and width replaces a Width of 0.
func (c *Config) RenderOptions(profile termenv.Profile, width int) render.Options {
	w := c.Plain.Width
	switch w {
	case 0:
		w = width
	case -1:
		w = 0
	}
	return render.Options{
		LaTeX: c.LaTeX,
		Plain: render.PlainConfig{
			Width:        w,
			KeepWrappers: c.Plain.KeepWrappers,
			Profile:      profile,
		},
	}
}

// Dir returns the aldoc directory under $XDG_CONFIG_HOME, or ~/.config
// when it is unset.
func Dir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "aldoc"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "aldoc"), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Marshal encodes c as YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// Write saves c as YAML at path, creating its directory if needed.
func Write(path string, c *Config) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
