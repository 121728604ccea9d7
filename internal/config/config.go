// Package config provides YAML loading and validation of SRP domain
// parameter groups and logging settings. The prime/generator choice is
// deployment configuration, not library code; this package turns a
// vetted group definition into validated srp.Params.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fzdarsky/srp6go/pkg/srp"
)

// Config represents the SRP service configuration.
type Config struct {
	// DefaultGroup names the group used when callers do not ask for a
	// specific one.
	DefaultGroup string `yaml:"default_group"`
	// Groups is the catalog of domain parameter sets.
	Groups []GroupDefinition `yaml:"groups"`
	// Logging configures the log sink.
	Logging LoggingSettings `yaml:"logging"`
}

// GroupDefinition defines one domain parameter set. The modulus is a
// big-endian hex string, the distribution format of RFC 5054 groups.
type GroupDefinition struct {
	Name       string `yaml:"name"`
	ModulusHex string `yaml:"modulus_hex"`
	Generator  uint64 `yaml:"generator"`
	KeyLength  int    `yaml:"key_length"`
	SaltLength int    `yaml:"salt_length"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the configuration file.
//
//nolint:gosec // G304: config path comes from the operator
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for completeness and consistency.
// Each group definition is also materialized once so width mismatches
// between modulus and key_length surface at load time, not mid-handshake.
func (c *Config) Validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}

	seen := make(map[string]bool, len(c.Groups))
	for i := range c.Groups {
		g := &c.Groups[i]
		if g.Name == "" {
			return fmt.Errorf("groups[%d]: name is required", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("groups[%d]: duplicate group name %q", i, g.Name)
		}
		seen[g.Name] = true

		if g.SaltLength <= 0 {
			return fmt.Errorf("group %q: salt_length must be positive", g.Name)
		}
		if _, err := g.Params(); err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
	}

	if c.DefaultGroup == "" {
		return fmt.Errorf("default_group is required")
	}
	if !seen[c.DefaultGroup] {
		return fmt.Errorf("default_group %q is not defined", c.DefaultGroup)
	}

	if err := validateLogging(&c.Logging); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}

	return nil
}

func validateLogging(l *LoggingSettings) error {
	switch l.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid level %q", l.Level)
	}
	switch l.Format {
	case "", "json", "human":
	default:
		return fmt.Errorf("invalid format %q", l.Format)
	}
	return nil
}

// Params materializes the group definition into validated srp.Params.
func (g *GroupDefinition) Params() (*srp.Params, error) {
	return srp.NewParams(g.ModulusHex, g.Generator, g.KeyLength, g.SaltLength)
}

// GroupParams returns the materialized parameters for the named group,
// or for the default group when name is empty.
func (c *Config) GroupParams(name string) (*srp.Params, error) {
	if name == "" {
		name = c.DefaultGroup
	}
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return c.Groups[i].Params()
		}
	}
	return nil, fmt.Errorf("group %q is not defined", name)
}
