// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Profile is the path to the brand profile JSON file.
	Profile string `json:"profile,omitempty"`
	// AuditLog is the path of the JSONL audit log; empty disables it.
	AuditLog string `json:"audit_log,omitempty"`

	// Server
	Host string `json:"host,omitempty"` // Server host
	Port int    `json:"port,omitempty"` // Server port

	// Behavior
	JSON    bool `json:"json,omitempty"`    // Emit machine-readable output
	Verbose bool `json:"verbose,omitempty"` // Print request logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.AuditLog == "" {
		result.AuditLog = defaults.AuditLog
	}
	if result.Host == "" {
		result.Host = defaults.Host
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.JSON {
		result.JSON = defaults.JSON
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
