// Package config loads render settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/qmandel"
	"github.com/gogpu/qmandel/exact"
)

// Errors returned by Load and Validate.
var (
	ErrUnknownFormat = errors.New("config: unknown file format")
	ErrInvalid       = errors.New("config: invalid value")
)

// Format is a configuration file format.
type Format int

const (
	// FormatTOML is the TOML format.
	FormatTOML Format = iota

	// FormatYAML is the YAML format.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Config holds the settings of one render.
type Config struct {
	Output     string        `toml:"output" yaml:"output"`
	Width      int           `toml:"width" yaml:"width"`
	Height     int           `toml:"height" yaml:"height"`
	Iterations uint          `toml:"iterations" yaml:"iterations"`
	Center     exact.Complex `toml:"center" yaml:"center"`
	Span       exact.Complex `toml:"span" yaml:"span"`
	Workers    int           `toml:"workers" yaml:"workers"`
	Cache      bool          `toml:"cache" yaml:"cache"`
	LogLevel   string        `toml:"log_level" yaml:"log_level"`
}

// Default output settings.
const (
	DefaultOutput     = "mandelbrot.bmp"
	DefaultIterations = 8
	DefaultLogLevel   = "info"
)

// Default returns the reference render: a 64×64 view of [-9/4, 3/4] ×
// [-3/2, 3/2] with 8 iterations, written to mandelbrot.bmp.
func Default() *Config {
	v := qmandel.DefaultView()
	return &Config{
		Output:     DefaultOutput,
		Width:      v.Width,
		Height:     v.Height,
		Iterations: DefaultIterations,
		Center:     v.Center,
		Span:       v.Span,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads the file at path on top of Default. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format on top of Default. Keys absent
// from data keep their default values.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// applyDefaults fills values that were explicitly set empty.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalid, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalid, c.Height)
	case c.Iterations == 0:
		return fmt.Errorf("%w: iterations must be positive", ErrInvalid)
	case c.Span.Re().Sign() == 0 || c.Span.Im().Sign() == 0:
		return fmt.Errorf("%w: span %v has a zero side", ErrInvalid, c.Span)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// View returns the region and raster size to render.
func (c *Config) View() qmandel.View {
	return qmandel.View{
		Width:  c.Width,
		Height: c.Height,
		Center: c.Center,
		Span:   c.Span,
	}
}

// Options returns the renderer options for c.
func (c *Config) Options() []qmandel.Option {
	opts := []qmandel.Option{
		qmandel.WithIterations(c.Iterations),
		qmandel.WithWorkers(c.Workers),
	}
	if c.Cache {
		opts = append(opts, qmandel.WithCache(0))
	}
	return opts
}
