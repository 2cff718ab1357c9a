package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/logging"
)

func TestDebugLogging(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	base := config.LoggingConfig{Level: "info", Format: logging.FormatJSON}

	t.Run("line commands log to stderr", func(t *testing.T) {
		got := debugLogging(config.LoggingConfig{Level: "info", Format: logging.FormatJSON, File: "/tmp/x.log"}, false)
		assert.Equal(t, "debug", got.Level)
		assert.Equal(t, logging.FormatConsole, got.Format)
		assert.Empty(t, got.File)
		assert.Equal(t, logging.OutputStderr, got.ToLoggingConfig().Output)
	})

	t.Run("full-screen browser keeps the log file", func(t *testing.T) {
		got := debugLogging(base, true)
		assert.Equal(t, "debug", got.Level)
		assert.Equal(t, logging.FormatJSON, got.Format)
		assert.Equal(t, filepath.Join(home, "logs", "nutrispark.log"), got.File)
		assert.Equal(t, logging.OutputFile, got.ToLoggingConfig().Output)
	})

	t.Run("configured file is preserved", func(t *testing.T) {
		custom := base
		custom.File = filepath.Join(home, "custom.log")
		got := debugLogging(custom, true)
		assert.Equal(t, custom.File, got.File)
	})
}

func TestOwnsTerminal_RequiresAnnotation(t *testing.T) {
	assert.False(t, ownsTerminal(&cobra.Command{Use: "list"}))
}
