package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/logging"
	"github.com/rshade/nutrispark/internal/tui"
)

// setupLogging configures logging from the loaded config and the --debug
// flag, then stores the logger and a trace ID on the command context.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg = debugLogging(loggingCfg, ownsTerminal(cmd))
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	logCfg.Caller = debug
	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	} else if result.UsingFile && result.Logger.GetLevel() <= zerolog.DebugLevel {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// debugLogging raises lc to debug level. Commands that take over the screen
// keep writing to the log file; everything else logs to stderr.
func debugLogging(lc config.LoggingConfig, fullScreen bool) config.LoggingConfig {
	lc.Level = "debug"
	if fullScreen {
		if lc.File == "" {
			lc.File = config.DefaultLogFile()
		}
		return lc
	}
	lc.Format = logging.FormatConsole
	lc.File = ""
	return lc
}

// ownsTerminal reports whether cmd is about to run the full-screen browser.
func ownsTerminal(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[annotationFullScreen]; !ok {
		return false
	}
	interactive, _ := tui.BrowserSupport()
	return interactive
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logger.Info().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
