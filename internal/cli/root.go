// Package cli wires the nutrispark cobra commands to the food API client,
// the interactive browser and the configuration file.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationConfigTolerant marks commands that must run even when the config
// file cannot be parsed, so a broken file can be inspected or rewritten.
const annotationConfigTolerant = "nutrispark/config-tolerant"

// annotationFullScreen marks commands that run the alt-screen browser.
const annotationFullScreen = "nutrispark/full-screen"

// NewRootCmd creates the root Cobra command for the nutrispark CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "nutrispark",
		Short:   "Browse foods and their macronutrients from the terminal",
		Long:    "nutrispark: search the food catalog and inspect the macronutrient profile of any food",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
		SilenceUsage: true,
		Annotations:  map[string]string{annotationFullScreen: "true"},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("api-url", "", "food API base URL (overrides config and NUTRISPARK_API_URL)")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the default configuration")
	cmd.PersistentFlags().Int("timeout", 0, "per-request timeout in seconds (0 = none)")
	cmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "dotenv file supplying NUTRISPARK_* variables")

	cmd.AddCommand(newBrowseCmd(), newListCmd(), newShowCmd(), newConfigCmd(), NewSetupCmd())

	return cmd
}

const rootCmdExample = `  # Search the catalog interactively
  nutrispark

  # List every food the API knows about
  nutrispark list

  # Only foods matching "app"
  nutrispark list --filter app

  # Macronutrient breakdown for two foods, as JSON
  nutrispark show kale "Green Apple" --output json

  # Point at a different API
  nutrispark --api-url https://foods.example.com list

  # Write a default configuration file
  nutrispark config init`

// loadConfig builds the effective configuration. Precedence, lowest first:
// defaults, config file, --config overlay, dotenv file, environment, flags.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	tolerant := isConfigTolerant(cmd)

	cfg, err := config.Load("")
	if err != nil {
		if !tolerant {
			return nil, err
		}
		cmd.PrintErrf("Warning: %v\n", err)
		cfg = config.New()
	}

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err = config.ShallowMergeYAML(cfg, overlay); err != nil {
			return nil, fmt.Errorf("applying --config: %w", err)
		}
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	lookup, err := config.DotEnvLookup(envFile, lookupEnv)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides(lookup)

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.TimeoutSeconds, _ = cmd.Flags().GetInt("timeout")
	}

	return cfg, nil
}

func isConfigTolerant(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationConfigTolerant]; ok {
			return true
		}
	}
	return false
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationConfigTolerant: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigGetCmd(), NewConfigValidateCmd())
	return cmd
}
