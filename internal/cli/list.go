package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/food"
)

const tabPadding = 2

func newListCmd() *cobra.Command {
	var (
		filter string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the food catalog",
		Example: `  # Every food
  nutrispark list

  # Foods whose name matches "app", fuzzy or substring
  nutrispark list --filter app

  # Machine readable
  nutrispark list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			return runList(cmd, filter, format)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show foods matching this text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, filter, format string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	records, err := client.ListFoods(ctx)
	if err != nil {
		return fmt.Errorf("listing foods: %w", err)
	}

	summaries := food.Summarize(records)
	if filter != "" {
		summaries = food.Filter(summaries, filter)
	}
	logger.Debug().Ctx(ctx).Int("total", len(records)).Int("shown", len(summaries)).Msg("catalog listed")

	if format == config.FormatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	_, _ = fmt.Fprintln(w, "IDENTIFIER\tNAME")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", s.Identifier, s.DisplayLabel)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	_, err = p.Fprintf(cmd.OutOrStdout(), "\n%d of %d foods\n", len(summaries), len(records))
	return err
}
