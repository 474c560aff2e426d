package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://34.232.0.139/compele-api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.State.Dir)
	assert.NotEmpty(t, cfg.Cache.Path)
	assert.Equal(t, "127.0.0.1", cfg.Stub.Host)
	assert.Equal(t, 8085, cfg.Stub.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESERVAS_API_BASE_URL", "http://localhost:8085/compele-api")
	t.Setenv("RESERVAS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8085/compele-api", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: http://api.example.com/compele-api
  timeout: 5s
state:
  dir: /tmp/reservas-test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com/compele-api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/reservas-test", cfg.State.Dir)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://34.232.0.139/compele-api", cfg.API.BaseURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing base URL", func(c *Config) { c.API.BaseURL = "" }, "api.base_url is required"},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, "api.timeout must be positive"},
		{"missing state dir", func(c *Config) { c.State.Dir = "" }, "state.dir is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				API:   APIConfig{BaseURL: "http://localhost/compele-api", Timeout: time.Second},
				State: StateConfig{Dir: "/tmp/reservas"},
			}
			tt.mutate(&cfg)

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
