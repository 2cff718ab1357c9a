package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/logging"
	"github.com/rshade/nutrispark/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the flags of the setup command.
type SetupOptions struct {
	SkipAPICheck   bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

const dirPermBase = 0o700

// apiCheckTimeout bounds the reachability probe when no timeout is configured.
const apiCheckTimeout = 5 * time.Second

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "✓"
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "✗"
	default:
		return "?"
	}
}

// NewSetupCmd creates the setup command that prepares the nutrispark home
// directory and checks the food API can be reached.
func NewSetupCmd() *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Prepare the nutrispark environment",
		Long: `Creates the nutrispark directories, writes a default configuration file
when none exists and checks that the food API answers.

Safe to run repeatedly: existing files are kept.`,
		Example: `  # Full setup
  nutrispark setup

  # CI/CD setup (no TTY-dependent output)
  nutrispark setup --non-interactive

  # Offline
  nutrispark setup --skip-api-check`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigTolerant: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols)")
	cmd.Flags().BoolVar(&opts.SkipAPICheck, "skip-api-check", false,
		"Do not contact the food API")

	return cmd
}

// runSetup runs every step even when an earlier one fails and returns an
// error only if a critical step failed.
func runSetup(cmd *cobra.Command, opts *SetupOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !opts.NonInteractive && !term.IsTerminal(int(os.Stdout.Fd())) {
		opts.NonInteractive = true
	}

	result := &SetupResult{}
	record := func(steps ...StepResult) {
		for _, s := range steps {
			printStep(cmd, s, opts.NonInteractive)
			result.Steps = append(result.Steps, s)
		}
	}

	record(stepDisplayVersion())
	record(stepCreateDirectories()...)
	record(stepInitConfig())

	if opts.SkipAPICheck {
		record(StepResult{Name: "API check", Status: StepSkipped, Message: "Skipped API check"})
	} else {
		record(stepCheckAPI(ctx, cmd))
	}

	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().Ctx(ctx).Str("component", "setup").Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}
	return nil
}

func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatStatus(step.Status, nonInteractive), step.Message)
}

func printSummary(cmd *cobra.Command, result *SetupResult) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out)
	switch {
	case result.HasErrors:
		_, _ = fmt.Fprintln(out, "Setup completed with errors. Review the messages above for remediation steps.")
	case result.HasWarnings:
		_, _ = fmt.Fprintln(out, "Setup complete with warnings. Run 'nutrispark' once the issues above are resolved.")
	default:
		_, _ = fmt.Fprintln(out, "Setup complete! Run 'nutrispark' to start browsing.")
	}
}

func stepDisplayVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("nutrispark %s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepCreateDirectories creates the config and log directories, one result
// per directory.
func stepCreateDirectories() []StepResult {
	baseDir, err := config.GetConfigDir()
	if err != nil {
		return []StepResult{{
			Name:     "Directory creation",
			Status:   StepError,
			Message:  fmt.Sprintf("Cannot determine config directory: %v\n  Try: export %s=/path/to/dir", err, config.EnvHome),
			Critical: true,
			Err:      err,
		}}
	}

	logDir := filepath.Join(baseDir, "logs")
	dirs := []struct {
		path   string
		ensure func() error
	}{
		{path: baseDir, ensure: config.EnsureConfigDir},
		{path: logDir, ensure: func() error { return os.MkdirAll(logDir, dirPermBase) }},
	}

	var results []StepResult
	for _, d := range dirs {
		dir := d.path
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", dir),
				Critical: true,
			})
			continue
		}

		if mkErr := d.ensure(); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf("Failed to create %s: %v\n  Try: export %s=/path/to/writable/directory",
					dir, mkErr, config.EnvHome),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", dir),
			Critical: true,
		})
	}
	return results
}

// stepInitConfig writes the default config file unless one exists.
func stepInitConfig() StepResult {
	cfg := config.New()
	configPath := cfg.ConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Config already exists (%s)", configPath),
			Critical: true,
		}
	}

	if err := cfg.Save(); err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", configPath),
		Critical: true,
	}
}

// stepCheckAPI lists the catalog once. An unreachable API is a warning since
// it may simply not be running yet.
func stepCheckAPI(ctx context.Context, cmd *cobra.Command) StepResult {
	client, err := newClient(cmd)
	if err != nil {
		return StepResult{Name: "API check", Status: StepWarning, Message: err.Error(), Err: err}
	}

	if config.GetGlobalConfig().API.TimeoutSeconds == 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, apiCheckTimeout)
		defer cancel()
	}

	records, err := client.ListFoods(ctx)
	if err != nil {
		return StepResult{
			Name:   "API check",
			Status: StepWarning,
			Message: fmt.Sprintf("Food API at %s is not reachable: %v\n  Try: nutrispark --api-url URL setup",
				client.BaseURL(), err),
			Err: err,
		}
	}

	p := message.NewPrinter(language.English)
	return StepResult{
		Name:    "API check",
		Status:  StepSuccess,
		Message: p.Sprintf("Food API at %s serves %d foods", client.BaseURL(), len(records)),
	}
}
