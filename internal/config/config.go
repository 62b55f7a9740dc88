// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultBaseURL is the backend address used when nothing else is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// DefaultTimeoutSeconds bounds each backend request.
const DefaultTimeoutSeconds = 30

// Config represents the CLI configuration. Values merge in order: defaults,
// JSON config file, environment variables, CLI flags.
type Config struct {
	BaseURL        string `json:"base_url,omitempty" env:"APPLYTRACK_BASE_URL"`       // Backend base address
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" env:"APPLYTRACK_TIMEOUT"` // Per-request timeout
	StateDir       string `json:"state_dir,omitempty" env:"APPLYTRACK_STATE_DIR"`     // Override for the profile store location
	AdminName      string `json:"admin_name,omitempty" env:"APPLYTRACK_ADMIN_NAME"`   // Admin account name for the admin portal
	AdminToken     string `json:"-" env:"APPLYTRACK_ADMIN_TOKEN"`                     // Admin credential; env or flag only, never the config file
	LogLevel       string `json:"log_level,omitempty" env:"LOG_LEVEL"`                // zerolog level: debug, info, warn, error
	Verbose        bool   `json:"verbose,omitempty" env:"APPLYTRACK_VERBOSE"`         // Print detailed request information
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       "warn",
	}
}

// Load loads configuration from a JSON file. An empty path returns an empty
// Config so callers can fall through to env and flag values.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Set variables win
// over file values.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.AdminName == "" {
		result.AdminName = defaults.AdminName
	}
	if result.AdminToken == "" {
		result.AdminToken = defaults.AdminToken
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: 'base_url' must be an absolute URL, got %q", c.BaseURL)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}
