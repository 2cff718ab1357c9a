package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/food"
	"github.com/rshade/nutrispark/internal/foodapi"
	"github.com/rshade/nutrispark/internal/tui"
)

// showConcurrency bounds parallel detail requests.
const showConcurrency = 4

// foodReport is the JSON shape of one show result.
type foodReport struct {
	Identifier     string        `json:"identifier"`
	Name           string        `json:"name,omitempty"`
	Macronutrients []macroReport `json:"macronutrients,omitempty"`
	Vitamins       []string      `json:"vitamins,omitempty"`
	Minerals       []string      `json:"minerals,omitempty"`
	Error          string        `json:"error,omitempty"`
}

type macroReport struct {
	Name         string  `json:"name"`
	Grams        float64 `json:"grams"`
	SharePercent float64 `json:"share_percent"`
}

func newShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show NAME_OR_SLUG...",
		Short: "Show the macronutrient breakdown of one or more foods",
		Long: `Fetches each named food and prints its macronutrients per 100 grams.
Names are converted to identifiers the same way the catalog does, so
"Green Apple" and green-apple refer to the same food.`,
		Example: `  nutrispark show kale
  nutrispark show "Green Apple" banana --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			return runShow(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")

	return cmd
}

func runShow(cmd *cobra.Command, names []string, format string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	ids := make([]string, len(names))
	for i, n := range names {
		ids[i] = food.Slug(n)
	}

	ctx := cmd.Context()
	results := foodapi.FetchMany(ctx, client, ids, showConcurrency)

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			logger.Warn().Ctx(ctx).Err(r.Err).Str("identifier", r.Identifier).Msg("food fetch failed")
			errs = append(errs, fmt.Errorf("%s: %w", r.Identifier, r.Err))
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case format == config.FormatJSON:
		err = writeShowJSON(out, results)
	case tui.DetectOutputMode(out) == tui.OutputModePlain:
		err = writeShowPlain(out, cmd.ErrOrStderr(), results)
	default:
		err = writeShowStyled(out, cmd.ErrOrStderr(), results)
	}
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d foods could not be loaded: %w", len(errs), len(results), errors.Join(errs...))
	}
	return nil
}

func newFoodReport(r foodapi.FetchResult) foodReport {
	report := foodReport{Identifier: r.Identifier}
	if r.Err != nil {
		report.Error = r.Err.Error()
		return report
	}

	macros := food.Project(*r.Record)
	shares := food.Shares(macros)
	report.Name = r.Record.Name
	report.Vitamins = r.Record.Vitamins
	report.Minerals = r.Record.Minerals
	for i, m := range macros {
		report.Macronutrients = append(report.Macronutrients, macroReport{
			Name:         m.Name,
			Grams:        m.Value,
			SharePercent: shares[i],
		})
	}
	return report
}

func writeShowJSON(w io.Writer, results []foodapi.FetchResult) error {
	reports := make([]foodReport, 0, len(results))
	for _, r := range results {
		reports = append(reports, newFoodReport(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeShowPlain(w, errW io.Writer, results []foodapi.FetchResult) error {
	p := message.NewPrinter(language.English)
	printed := false
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(errW, "No data found for %q.\n", r.Identifier)
			continue
		}
		if printed {
			_, _ = fmt.Fprintln(w)
		}
		printed = true

		_, _ = fmt.Fprintf(w, "%s (%s)\n", r.Record.Name, r.Identifier)
		_, _ = fmt.Fprintln(w, "Nutritional Information per 100 grams:")

		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		macros := food.Project(*r.Record)
		shares := food.Shares(macros)
		for j, m := range macros {
			_, _ = p.Fprintf(tw, "  %s\t%s\t%.1f%%\n", food.Label(m.Name), food.FormatGrams(m.Value), shares[j])
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if len(r.Record.Vitamins) > 0 {
			_, _ = fmt.Fprintf(w, "  Vitamins: %s\n", food.JoinList(r.Record.Vitamins))
		}
		if len(r.Record.Minerals) > 0 {
			_, _ = fmt.Fprintf(w, "  Minerals: %s\n", food.JoinList(r.Record.Minerals))
		}
	}
	return nil
}

func writeShowStyled(w, errW io.Writer, results []foodapi.FetchResult) error {
	width := tui.TerminalWidth()
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintln(errW, tui.WarningStyle.Render(fmt.Sprintf("No data found for %q.", r.Identifier)))
			continue
		}
		if _, err := fmt.Fprintln(w, tui.RenderFoodDetail(*r.Record, food.Project(*r.Record), width)); err != nil {
			return err
		}
	}
	return nil
}
