// Package config holds the findmax configuration: the input parameter, the
// rendering buffer size, and logging settings. Configuration is read once at
// startup and immutable afterward.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"findmax/internal/render"
)

// Config holds all findmax configuration.
type Config struct {
	// Input is the comma-separated integer list, e.g. "1,2,3".
	// Maximum 16 elements.
	Input string `yaml:"input"`

	// Render settings
	Render RenderConfig `yaml:"render"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig configures result rendering.
type RenderConfig struct {
	// BufferSize is the capacity in bytes of each rendered log line.
	// Output longer than this is truncated with a warning.
	BufferSize int `yaml:"buffer_size"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			BufferSize: render.DefaultBufferSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if input := os.Getenv("FINDMAX_INPUT"); input != "" {
		c.Input = input
	}
	if level := os.Getenv("FINDMAX_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidLevels lists all supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Render.BufferSize <= 0 {
		return fmt.Errorf("render buffer size must be positive, got %d", c.Render.BufferSize)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level %q (valid: %v)", c.Logging.Level, ValidLevels)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q (valid: json, text)", c.Logging.Format)
	}

	return nil
}
