// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.API.TimeoutSecs)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, 1, cfg.API.RetryDelaySecs)
	assert.Empty(t, cfg.API.URL)
}

func TestLoadFrom_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
url = "https://example.com/generate"
timeout_secs = 10

[ui]
accent_color = "F0883E"
compact_mode = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/generate", cfg.API.URL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout())
	assert.Equal(t, 3, cfg.API.MaxRetries, "unset values keep defaults")
	assert.Equal(t, "F0883E", cfg.UI.AccentColor)
	assert.True(t, cfg.UI.CompactMode)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nurl = \"https://file.example.com\"\n"), 0o644))

	t.Setenv(EnvAPIURL, "https://env.example.com")
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.URL)
	assert.Equal(t, "env-key", cfg.API.Key)
}

func TestLoadFrom_InvalidURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nurl = \"not a url\"\n"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestConfig_RequireEndpoint(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.RequireEndpoint(), ErrNoEndpoint)

	cfg.API.URL = "https://example.com"
	assert.NoError(t, cfg.RequireEndpoint())
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.API.URL = "https://example.com/generate"
	cfg.UI.AccentColor = "A371F7"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.URL, loaded.API.URL)
	assert.Equal(t, cfg.UI.AccentColor, loaded.UI.AccentColor)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nurl = \"https://one.example.com\"\n"), 0o644))

	reloads := make(chan *Config, 4)
	w, err := Watch(path, func(cfg *Config, err error) {
		if err == nil {
			reloads <- cfg
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[api]\nurl = \"https://two.example.com\"\n"), 0o644))

	select {
	case cfg := <-reloads:
		assert.Equal(t, "https://two.example.com", cfg.API.URL)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}
