// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and persists the application configuration.
//
// Configuration lives at ~/.memu/config.toml. Values resolve in order:
// built-in defaults, then the config file, then environment variables
// (MEMU_API_URL, MEMU_API_KEY). A missing file is not an error.
package config

import (
	"bytes"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/memu-tui/internal/util"
)

// Environment overrides, applied after the file is read.
const (
	EnvAPIURL = "MEMU_API_URL"
	EnvAPIKey = "MEMU_API_KEY"
)

// ErrNoEndpoint is returned when no API URL is configured anywhere.
var ErrNoEndpoint = errors.New("no API endpoint configured: set api.url in config.toml or " + EnvAPIURL)

// =============================================================================
// CONFIGURATION TYPES
// =============================================================================

// Config is the full application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	UI      UIConfig      `toml:"ui"`
	Storage StorageConfig `toml:"storage"`
}

// APIConfig configures the generation endpoint client.
type APIConfig struct {
	URL            string `toml:"url"`
	Key            string `toml:"key"`
	TimeoutSecs    int    `toml:"timeout_secs"`
	MaxRetries     int    `toml:"max_retries"`
	RetryDelaySecs int    `toml:"retry_delay_secs"`
}

// UIConfig configures presentation defaults.
type UIConfig struct {
	AccentColor string `toml:"accent_color"`
	CompactMode bool   `toml:"compact_mode"`
}

// StorageConfig configures where state lives.
type StorageConfig struct {
	// Path of the database file. Empty means ~/.memu/memu.db.
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			TimeoutSecs:    30,
			MaxRetries:     3,
			RetryDelaySecs: 1,
		},
	}
}

// Timeout returns the API timeout as a duration.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// RetryDelay returns the base retry delay as a duration.
func (c *APIConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySecs) * time.Second
}

// =============================================================================
// LOADING AND SAVING
// =============================================================================

// Dir returns the configuration directory (~/.memu).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".memu"), nil
}

// Path returns the config file path (~/.memu/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path, applying
// defaults and environment overrides. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers environment variables over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.API.Key = v
	}
}

// Validate checks the configuration for values that cannot work.
// An empty API URL is allowed here; the caller decides whether the
// endpoint is required for the chosen command.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return nil
	}
	parsed, err := url.Parse(c.API.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("invalid api.url: " + c.API.URL)
	}
	return nil
}

// RequireEndpoint returns ErrNoEndpoint when no API URL is set.
func (c *Config) RequireEndpoint() error {
	if c.API.URL == "" {
		return ErrNoEndpoint
	}
	return nil
}

// Save writes the configuration to the given path atomically.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0o644)
}

// DatabasePath resolves the database location, preferring the
// configured storage path.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "memu.db"), nil
}
