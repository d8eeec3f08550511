// Package config provides optional file-based configuration for the seed tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"newsseed/internal/emitter"
)

// Configuration validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output.format must be one of: json, yaml, sql, table")
	ErrMissingCollection   = errors.New("output.collection is required")
	ErrInvalidCollection   = emitter.ErrInvalidCollection
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the seed tool configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig defines how articles are rendered.
type OutputConfig struct {
	Format     string `yaml:"format"`
	Collection string `yaml:"collection"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:     string(emitter.FormatJSON),
			Collection: emitter.DefaultCollection,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values. The result is not validated, so callers can
// apply overrides before calling Validate.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(emitter.Formats(), c.Output.Format) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.Format)
	}

	if c.Output.Collection == "" {
		return ErrMissingCollection
	}

	if err := emitter.ValidateCollection(c.Output.Collection); err != nil {
		return fmt.Errorf("output.collection: %w", err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Format: %s, Collection: %s, LogLevel: %s}",
		c.Output.Format,
		c.Output.Collection,
		c.Logging.Level,
	)
}
