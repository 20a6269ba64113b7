// Package config handles configuration loading and validation for
// appraise.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PageSizes are the rows-per-page choices offered by the table.
var PageSizes = []int{5, 10, 15, 20, 25, 30}

// Duration wraps time.Duration with yaml support for values like "500ms".
type Duration time.Duration

// UnmarshalYAML decodes a duration string or an integer millisecond count.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var asString string
	if err := value.Decode(&asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var asMillis int64
	if err := value.Decode(&asMillis); err != nil {
		return fmt.Errorf("invalid duration value")
	}
	*d = Duration(time.Duration(asMillis) * time.Millisecond)
	return nil
}

// MarshalYAML encodes the duration in its string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the application configuration.
type Config struct {
	TUI    TUIConfig    `yaml:"tui"`
	Review ReviewConfig `yaml:"review"`

	// SeedFile optionally preloads reviews at startup. Relative paths
	// resolve against the working directory. State is still ephemeral.
	SeedFile string `yaml:"seed_file"`
}

// TUIConfig holds display settings.
type TUIConfig struct {
	Theme    string `yaml:"theme"`
	PageSize int    `yaml:"page_size"`
}

// ReviewConfig holds review-store settings.
type ReviewConfig struct {
	// AddLatency is the simulated remote-write delay applied before an
	// added review becomes visible.
	AddLatency Duration `yaml:"add_latency"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:    "tokyo-night",
			PageSize: 10,
		},
		Review: ReviewConfig{
			AddLatency: Duration(500 * time.Millisecond),
		},
	}
}

// Load reads configuration from the given path. A missing or empty path
// returns defaults. The result is not validated; callers apply any flag
// overrides first and then call Validate once.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.PageSize == 0 {
		c.TUI.PageSize = defaults.TUI.PageSize
	}
}
