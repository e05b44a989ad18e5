// Package config loads the ember CLI settings from TOML or YAML files.
package config

import (
	"ember-lang/internal/lexer"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "EMBER_CONFIG"

// Output modes.
const (
	OutputText = "text"
	OutputJSON = "json"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalid is returned when a loaded config fails validation.
	ErrInvalid = errors.New("invalid config")
)

// Format represents the configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Config holds the CLI and scanner settings.
type Config struct {
	ColumnReset bool   `toml:"column_reset" yaml:"column_reset"` // reset column to 1 after a newline
	Output      string `toml:"output" yaml:"output"`             // "text" or "json"
	Color       bool   `toml:"color" yaml:"color"`
	LogLevel    string `toml:"log_level" yaml:"log_level"` // debug, info, warn, error
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// Default returns the built-in settings.
func Default() Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".ember_history")
	}
	return Config{
		ColumnReset: false,
		Output:      OutputText,
		Color:       true,
		LogLevel:    "info",
		HistoryFile: history,
	}
}

// Load reads the file at path over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	format, err := DetectFormat(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.decode(format, data); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve loads path if given, then the file named by EMBER_CONFIG, and
// falls back to the defaults.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) decode(format Format, data []byte) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), c)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, c)
	default:
		return ErrUnsupportedFormat
	}
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputText, OutputJSON, c.Output)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// LexerOptions returns the scanner options implied by the config.
func (c Config) LexerOptions() []lexer.Option {
	return []lexer.Option{lexer.WithColumnReset(c.ColumnReset)}
}
