package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// AppName is the application name used for the config directory
const AppName = "txt2opml"

const (
	// DefaultOutputExtension replaces the input extension when no output path is given
	DefaultOutputExtension = ".opml"
	// DefaultIndent is the number of spaces per OPML nesting level
	DefaultIndent = 2
	// MaxIndent bounds the indent setting
	MaxIndent = 8
)

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9._-]+$`)

// Config holds CLI configuration
type Config struct {
	OutputExtension string `json:"output_extension,omitempty" yaml:"output_extension,omitempty"`
	Indent          *int   `json:"indent,omitempty" yaml:"indent,omitempty"`
	OutputFormat    string `json:"output_format,omitempty" yaml:"output_format,omitempty"` // text, json, ndjson, yaml, table
	ErrorFormat     string `json:"error_format,omitempty" yaml:"error_format,omitempty"`   // auto, text, json, yaml
}

// Validate checks every set value.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputExtension, validation.Match(extensionPattern).Error("must start with a dot, e.g. .opml")),
		validation.Field(&c.Indent, validation.Min(0), validation.Max(MaxIndent)),
		validation.Field(&c.OutputFormat, validation.In("text", "json", "ndjson", "yaml", "table")),
		validation.Field(&c.ErrorFormat, validation.In("auto", "text", "json", "yaml")),
	)
}

// Extension returns the configured output extension or the default.
func (c *Config) Extension() string {
	if c == nil || c.OutputExtension == "" {
		return DefaultOutputExtension
	}
	return c.OutputExtension
}

// IndentWidth returns the configured indent or the default.
func (c *Config) IndentWidth() int {
	if c == nil || c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ReadConfig reads the config file from the default location
func ReadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load loads config from the given path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save saves config to the given path
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
