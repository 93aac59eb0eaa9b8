package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	svc := NewConfigServiceWithPath(path)

	cfg, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "https://api.dictionaryapi.dev/api/v2/entries/en", cfg.API.BaseURL)
	assert.Equal(t, BackendFile, cfg.History.Backend)
	assert.Equal(t, filepath.Join(dir, "storage.json"), cfg.History.Path)
	assert.Equal(t, filepath.Join(dir, "wordgrip.log"), cfg.Log.File)
	assert.InDelta(t, 0.8, cfg.Audio.SpeechRate, 1e-9)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "config file should be created")
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[api]")
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `version = 1

[history]
backend = "sqlite"

[audio]
player = "mpv"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.History.Backend)
	assert.Equal(t, filepath.Join(dir, "storage.db"), cfg.History.Path)
	assert.Equal(t, "mpv", cfg.Audio.Player)
	assert.Equal(t, "https://api.dictionaryapi.dev/api/v2/entries/en", cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[api]
base_url = "https://file.example.com/entries"
timeout = "3s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("WORDGRIP_API_BASE_URL", "http://env.example.com/entries")
	t.Setenv("WORDGRIP_LOG_LEVEL", "debug")

	cfg, err := NewConfigServiceWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://env.example.com/entries", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)

	timeout, err := cfg.API.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, timeout)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0644))

	_, err := NewConfigServiceWithPath(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "non-http base url",
			mutate:  func(c *Config) { c.API.BaseURL = "ftp://example.com" },
			wantErr: "api.base_url",
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.API.Timeout = "soon" },
			wantErr: "api.timeout",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.Timeout = "-1s" },
			wantErr: "api.timeout",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.History.Backend = "redis" },
			wantErr: "history.backend",
		},
		{
			name:    "speech rate too high",
			mutate:  func(c *Config) { c.Audio.SpeechRate = 3 },
			wantErr: "audio.speech_rate",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewConfigServiceWithPath(filepath.Join(dir, "config.toml")).Load()
	require.NoError(t, err)

	require.NoError(t, cfg.ApplyOverrides(dir, Overrides{}))
	assert.Equal(t, filepath.Join(dir, "storage.json"), cfg.History.Path, "no overrides, no change")

	require.NoError(t, cfg.ApplyOverrides(dir, Overrides{HistoryBackend: BackendSQLite, LogFile: "/tmp/w.log"}))
	assert.Equal(t, BackendSQLite, cfg.History.Backend)
	assert.Equal(t, filepath.Join(dir, "storage.db"), cfg.History.Path)
	assert.Equal(t, "/tmp/w.log", cfg.Log.File)

	assert.Error(t, cfg.ApplyOverrides(dir, Overrides{HistoryBackend: "redis"}))
}

func TestLoadWithUnusableConfigDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	svc := NewConfigServiceWithPath(filepath.Join(blocker, "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err, "defaults are used when the config dir cannot be read")

	assert.Equal(t, BackendFile, cfg.History.Backend)
	assert.Equal(t, filepath.Join(blocker, "wordgrip.log"), cfg.Log.File)
}
