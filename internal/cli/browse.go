package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rshade/nutrispark/internal/config"
	"github.com/rshade/nutrispark/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Search the catalog and inspect foods interactively",
		Long: `Opens the interactive food browser. Type to filter the catalog, press
enter to open a food and esc to go back.

When stdout is not a terminal the catalog is printed as a plain table instead.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationFullScreen: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}
}

// runBrowse starts the Bubble Tea program, or lists the catalog when the
// terminal cannot host it.
func runBrowse(cmd *cobra.Command) error {
	interactive, monochrome := tui.BrowserSupport()
	if !interactive {
		logger.Debug().Ctx(cmd.Context()).Msg("no interactive terminal, falling back to list")
		return runList(cmd, "", config.FormatTable)
	}
	if monochrome {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	model := tui.NewAppModel(ctx, tui.Sources{Catalog: client, Detail: client}, tui.HomeRoute())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
