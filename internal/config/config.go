// Package config loads, validates and persists the nutrispark configuration
// file and applies environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// DefaultBaseURL is the API origin used when nothing else is configured.
const DefaultBaseURL = "http://localhost:3000"

// Environment variables that override file values.
const (
	EnvHome         = "NUTRISPARK_HOME"
	EnvAPIURL       = "NUTRISPARK_API_URL"
	EnvLogLevel     = "NUTRISPARK_LOG_LEVEL"
	EnvLogFormat    = "NUTRISPARK_LOG_FORMAT"
	EnvOutputFormat = "NUTRISPARK_OUTPUT_FORMAT"
)

const configFileName = "config.yaml"

// Config is the on-disk configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// APIConfig points the client at the food API.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent,omitempty"`
}

// OutputConfig controls the non-interactive commands.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls log level, encoding and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config populated with defaults and pointed at the default
// config file path. It does not read the file.
func New() *Config {
	cfg := &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   DefaultLogFile(),
		},
	}
	if path, err := GetConfigPath(); err == nil {
		cfg.configPath = path
	}
	return cfg
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error. Environment overrides are left to the caller, see
// ApplyEnvOverrides.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	if cfg.configPath != "" {
		data, err := os.ReadFile(cfg.configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", cfg.configPath, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", cfg.configPath, err)
			}
		}
	}

	return cfg, nil
}

// ApplyEnvOverrides replaces file values with any NUTRISPARK_* variables
// reported by lookup.
func (c *Config) ApplyEnvOverrides(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q must include scheme and host", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must be >= 0, got %d", c.API.TimeoutSeconds)
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output.default_format %q: must be %s or %s",
			c.Output.DefaultFormat, FormatTable, FormatJSON)
	}

	if c.Logging.Level != "" {
		if _, err = zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format %q: must be json or console", c.Logging.Format)
	}
	return nil
}

// Timeout returns the per-request API timeout. Zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Get returns a single setting by its dotted key, e.g. "api.base_url".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "api.timeout_seconds":
		return strconv.Itoa(c.API.TimeoutSeconds), nil
	case "api.user_agent":
		return c.API.UserAgent, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
