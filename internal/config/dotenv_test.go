package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nutrispark/internal/config"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDotEnvLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# local API\nNUTRISPARK_API_URL=http://dotenv.example.com\nNUTRISPARK_LOG_LEVEL=debug\n",
	), 0o600))

	lookup, err := config.DotEnvLookup(path, mapLookup(map[string]string{
		config.EnvLogLevel:  "warn",
		config.EnvAPIURL:    "",
		config.EnvLogFormat: "console",
	}))
	require.NoError(t, err)

	v, ok := lookup(config.EnvAPIURL)
	assert.True(t, ok)
	assert.Equal(t, "http://dotenv.example.com", v, "empty process value falls through")

	v, _ = lookup(config.EnvLogLevel)
	assert.Equal(t, "warn", v, "process environment wins")

	v, _ = lookup(config.EnvLogFormat)
	assert.Equal(t, "console", v)

	_, ok = lookup(config.EnvOutputFormat)
	assert.False(t, ok)
}

func TestDotEnvLookup_MissingFile(t *testing.T) {
	next := mapLookup(map[string]string{config.EnvAPIURL: "http://env.example.com"})

	lookup, err := config.DotEnvLookup(filepath.Join(t.TempDir(), "absent.env"), next)
	require.NoError(t, err)
	v, ok := lookup(config.EnvAPIURL)
	assert.True(t, ok)
	assert.Equal(t, "http://env.example.com", v)

	lookup, err = config.DotEnvLookup("", next)
	require.NoError(t, err)
	_, ok = lookup(config.EnvOutputFormat)
	assert.False(t, ok)
}

func TestDotEnvLookup_Unreadable(t *testing.T) {
	_, err := config.DotEnvLookup(t.TempDir(), mapLookup(nil))
	require.Error(t, err)
}
