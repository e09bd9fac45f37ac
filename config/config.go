// Package config loads and validates client configuration from
// defaults, an optional YAML file, and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix recognized on environment variable overrides,
// e.g. GOSHEETS_RETRY_MAXRETRIES=5.
const EnvPrefix = "GOSHEETS_"

// DefaultFile is the YAML file consulted by Load when it exists.
const DefaultFile = "gosheets.yaml"

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. The gosheets.yaml configuration file, if present
// 3. Default values (lowest priority)
func Load() (*Config, error) {
	return LoadFile(DefaultFile)
}

// LoadFile behaves like Load but reads the given YAML file instead of
// the default one. A missing file is not an error; defaults and
// environment variables still apply.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(envprovider.Provider(EnvPrefix, ".", func(s string) string {
		// GOSHEETS_RETRY_MAXRETRIES -> retry.maxretries
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(map[string]any{
		"credentials.file": "",
		"log.level":        "info",
		"log.pretty":       false,
		"retry.maxretries": 9,
		"retry.backoff":    "30s",
	}, "."), nil)
}
