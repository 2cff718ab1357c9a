package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nutrispark/internal/config"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	for _, key := range []string{config.EnvAPIURL, config.EnvLogLevel, config.EnvLogFormat, config.EnvOutputFormat} {
		t.Setenv(key, "")
	}
	return dir
}

func TestNew_Defaults(t *testing.T) {
	home := isolateHome(t)

	cfg := config.New()
	assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.TimeoutSeconds)
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, "logs", "nutrispark.log"), cfg.Logging.File)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoad_ReadsFileOnly(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://foods.example.com
  timeout_seconds: 5
output:
  default_format: json
`), 0o600))
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://foods.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, config.FormatJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level, "the process environment is applied by the caller")
	assert.Equal(t, "json", cfg.Logging.Format, "fields absent from the file keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestApplyEnvOverrides(t *testing.T) {
	isolateHome(t)
	env := map[string]string{
		config.EnvAPIURL:       "http://api.internal:8080",
		config.EnvLogFormat:    "console",
		config.EnvOutputFormat: "json",
		config.EnvLogLevel:     "",
	}

	cfg := config.New()
	cfg.ApplyEnvOverrides(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "http://api.internal:8080", cfg.API.BaseURL)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level, "empty values are ignored")
}

func TestValidate(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"defaults", func(*config.Config) {}, ""},
		{"relative url", func(c *config.Config) { c.API.BaseURL = "localhost:3000/api" }, "scheme and host"},
		{"no host", func(c *config.Config) { c.API.BaseURL = "http://" }, "scheme and host"},
		{"negative timeout", func(c *config.Config) { c.API.TimeoutSeconds = -1 }, "timeout_seconds"},
		{"unknown format", func(c *config.Config) { c.Output.DefaultFormat = "xml" }, "default_format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "text" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	home := isolateHome(t)
	t.Setenv(config.EnvHome, filepath.Join(home, "nested"))

	cfg := config.New()
	cfg.API.BaseURL = "https://foods.example.com"
	require.NoError(t, cfg.Save())
	assert.Equal(t, filepath.Join(home, "nested", "config.yaml"), cfg.ConfigPath())

	info, err := os.Stat(cfg.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := config.Load(cfg.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, cfg.API, loaded.API)
	assert.Equal(t, cfg.Logging, loaded.Logging)
}

func TestSave_NoPath(t *testing.T) {
	cfg := &config.Config{}
	require.Error(t, cfg.Save())
}

func TestGet(t *testing.T) {
	isolateHome(t)
	cfg := config.New()
	cfg.API.TimeoutSeconds = 7

	v, err := cfg.Get("api.timeout_seconds")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	v, err = cfg.Get("output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "table", v)

	_, err = cfg.Get("api.password")
	require.Error(t, err)
}
