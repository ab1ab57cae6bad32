// Package config handles configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/woozymasta/osmosint/internal/output"
	"github.com/woozymasta/osmosint/internal/overpass"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Overpass  Overpass  `yaml:"overpass"`
	Output    Output    `yaml:"output"`
	Nominatim Nominatim `yaml:"nominatim"`
}

// Overpass configures the query backend.
type Overpass struct {
	Endpoint      string        `yaml:"endpoint"`
	UserAgent     string        `yaml:"user_agent,omitempty"`
	Timeout       time.Duration `yaml:"timeout"`        // client side, whole request
	ServerTimeout int           `yaml:"server_timeout"` // seconds, sent as [timeout:N]
	MaxRetries    int           `yaml:"max_retries"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
}

// Output configures result rendering.
type Output struct {
	Dir       string `yaml:"dir"`
	Basename  string `yaml:"basename"`
	Threshold int    `yaml:"threshold"`
}

// Nominatim configures the optional geocoder.
type Nominatim struct {
	URL string `yaml:"url,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Overpass: Overpass{
			Endpoint:      overpass.DefaultEndpoint,
			UserAgent:     "osmosint",
			Timeout:       90 * time.Second,
			ServerTimeout: 60,
			MaxRetries:    0,
			RetryDelay:    5 * time.Second,
		},
		Output: Output{
			Dir:       ".",
			Basename:  output.DefaultBasename,
			Threshold: output.DefaultThreshold,
		},
	}
}

// Load reads the YAML configuration file from path over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Overpass.Endpoint == "" {
		return errors.New("overpass.endpoint is required")
	}
	if c.Overpass.Timeout < 0 {
		return errors.New("overpass.timeout must not be negative")
	}
	if c.Overpass.MaxRetries < 0 {
		return errors.New("overpass.max_retries must not be negative")
	}
	if c.Output.Threshold <= 0 {
		c.Output.Threshold = output.DefaultThreshold
	}
	if c.Output.Basename == "" {
		c.Output.Basename = output.DefaultBasename
	}
	return nil
}
