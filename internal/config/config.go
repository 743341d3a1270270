// Package config loads chandas CLI configuration from an optional YAML file
// with environment-variable overrides. The core scansion packages take no
// configuration; everything here concerns the command-line surface.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	// MetersFile optionally points at a YAML catalogue of additional meter
	// templates merged after the builtins.
	MetersFile string `yaml:"meters_file"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the zero configuration: builtin meters only,
// info-level logging.
func DefaultConfig() *Config {
	return &Config{}
}

// DefaultPath is the conventional config location relative to the working
// directory.
func DefaultPath() string {
	return filepath.Join(".chandas", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Environment overrides (CHANDAS_METERS, CHANDAS_VERBOSE)
// are applied last, so they win over file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file is fine; defaults plus env.
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CHANDAS_METERS"); v != "" {
		c.MetersFile = v
	}
	if v := os.Getenv("CHANDAS_VERBOSE"); v != "" {
		c.Verbose = v == "1" || v == "true"
	}
}
