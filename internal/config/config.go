// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mme-calc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Safety contains safety-audit configuration
	Safety SafetyConfig `json:"safety"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Precision is the number of decimal places shown in results
	Precision int `json:"precision"`

	// NoColor disables terminal styling
	NoColor bool `json:"no_color"`
}

// SafetyConfig contains factor-of-safety settings
type SafetyConfig struct {
	// FoSThreshold is the minimum factor of safety considered safe
	FoSThreshold float64 `json:"fos_threshold"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Precision: 6,
			NoColor:   false,
		},
		Safety: SafetyConfig{
			FoSThreshold: 1.0,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
