package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/foodapi"
)

// newClient builds an API client from the effective configuration.
func newClient(cmd *cobra.Command) (*foodapi.Client, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ua := cfg.API.UserAgent
	if ua == "" {
		ua = foodapi.DefaultUserAgent
		if v := cmd.Root().Version; v != "" {
			ua += "/" + v
		}
	}

	client, err := foodapi.NewClient(cfg.API.BaseURL,
		foodapi.WithTimeout(cfg.Timeout()),
		foodapi.WithUserAgent(ua),
	)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}
	return client, nil
}

// resolveOutputFormat returns flag when set, otherwise the configured default.
func resolveOutputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
