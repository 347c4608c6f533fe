// Package config loads the retry settings and resolves the directories
// holding profiles and configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment override, e.g. WINLAYOUT_RETRY_COUNT.
const EnvPrefix = "WINLAYOUT"

// FileName is the configuration file inside the config directory.
const FileName = "config.toml"

const defaultFileContents = `# winlayout configuration

# How many times "load" re-checks the open windows after launching applications.
retry_count = 5

# Milliseconds to wait before each check.
retry_interval_ms = 750

# Windows of executables below this directory are never matched or disposed.
# Leave unset to use the operating system directory (e.g. C:\Windows).
# system_dir = 'C:\Windows'

# Skip windows whose executable path cannot be read instead of failing the load.
skip_unresolved_windows = false
`

// Config holds the settings read by the reconciliation loop.
type Config struct {
	RetryCount            int     `toml:"retry_count"             split_words:"true"`
	RetryIntervalMs       int     `toml:"retry_interval_ms"       split_words:"true"`
	SystemDir             *string `toml:"system_dir"              split_words:"true"`
	SkipUnresolvedWindows bool    `toml:"skip_unresolved_windows" split_words:"true"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RetryCount:      5,
		RetryIntervalMs: 750,
	}
}

// RetryInterval returns the wait before each reconciliation attempt.
func (c *Config) RetryInterval() time.Duration {
	return time.Duration(c.RetryIntervalMs) * time.Millisecond
}

// ResolveSystemDir returns the configured system directory, or fallback
// when the key is unset.
func (c *Config) ResolveSystemDir(fallback string) string {
	if c.SystemDir != nil {
		return *c.SystemDir
	}
	return fallback
}

// Validate rejects settings the loop cannot run with.
func (c *Config) Validate() error {
	if c.RetryCount < 0 {
		return fmt.Errorf("retry_count must be >= 0 (got %d)", c.RetryCount)
	}
	if c.RetryIntervalMs < 0 {
		return fmt.Errorf("retry_interval_ms must be >= 0 (got %d)", c.RetryIntervalMs)
	}
	return nil
}

// Load reads <dir>/config.toml, writing a commented default file first if
// none exists, then applies WINLAYOUT_* environment overrides.
func Load(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte(defaultFileContents)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to create config file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("error reading config from file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and applies environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
