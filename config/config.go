// Package config holds the file configuration for the web host.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the card scanning server.
type Config struct {
	// Listen is the HTTP listen address (default: ":8080").
	Listen string `yaml:"listen"`

	// Languages are the OCR language hints (default: ["eng"]).
	Languages []string `yaml:"languages"`

	// DPI is the assumed scan resolution passed to the engine (default: 300).
	DPI int `yaml:"dpi"`

	// RulesFile optionally points at a JavaScript cleanup rules file.
	RulesFile string `yaml:"rules_file"`

	// MaxUploadBytes caps the accepted image size (default: 16 MB).
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.defaults()
	return c
}

// Load reads and validates a YAML configuration file, filling defaults for
// absent fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c.defaults()
	return c, nil
}

func (c *Config) defaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if len(c.Languages) == 0 {
		c.Languages = []string{"eng"}
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 16 << 20
	}
}
