package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gosheets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Credentials.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, 9, cfg.Retry.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Retry.Backoff)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
credentials:
  file: /etc/svc/account.json
log:
  level: debug
  pretty: true
retry:
  maxretries: 4
  backoff: 5s
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/svc/account.json", cfg.Credentials.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, 4, cfg.Retry.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Retry.Backoff)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
retry:
  maxretries: 4
`)
	t.Setenv("GOSHEETS_RETRY_MAXRETRIES", "7")
	t.Setenv("GOSHEETS_LOG_LEVEL", "warn")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Retry.MaxRetries)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFileMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "retry: [not a map")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "defaults_valid",
			mutate:  func(_ *Config) {},
			wantErr: false,
		},
		{
			name:    "zero_max_retries_rejected",
			mutate:  func(cfg *Config) { cfg.Retry.MaxRetries = 0 },
			wantErr: true,
		},
		{
			name:    "negative_backoff_rejected",
			mutate:  func(cfg *Config) { cfg.Retry.Backoff = -time.Second },
			wantErr: true,
		},
		{
			name:    "unknown_log_level_rejected",
			mutate:  func(cfg *Config) { cfg.Log.Level = "loud" },
			wantErr: true,
		},
		{
			name:    "empty_log_level_allowed",
			mutate:  func(cfg *Config) { cfg.Log.Level = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Log:   LogConfig{Level: "info"},
				Retry: RetryConfig{MaxRetries: 9, Backoff: 30 * time.Second},
			}
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
