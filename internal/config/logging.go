package config

import (
	"path/filepath"

	"github.com/rshade/nutrispark/internal/logging"
)

// DefaultLogFile returns ~/.nutrispark/logs/nutrispark.log, or "" when the
// config directory cannot be determined.
func DefaultLogFile() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "logs", "nutrispark.log")
}

// ToLoggingConfig converts the file settings to a logging.Config. A set File
// selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
