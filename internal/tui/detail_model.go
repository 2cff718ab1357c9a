package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nutrispark/internal/food"
	"github.com/rshade/nutrispark/internal/foodapi"
)

// detailLoadedMsg carries the record fetched for one detail mount; record
// is nil when the fetch failed.
type detailLoadedMsg struct {
	mountID string
	record  *food.Record
}

// DetailModel shows the nutrient profile of one food. It fetches the record
// once on entry and renders loading, not found, or the breakdown.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DetailModel struct {
	ctx        context.Context
	source     foodapi.DetailSource
	identifier string
	meta       food.PageMeta
	mountID    string

	loading *LoadingState
	record  *food.Record
	macros  [3]food.MacronutrientEntry

	width int
}

// NewDetailModel creates the detail view for identifier.
func NewDetailModel(ctx context.Context, source foodapi.DetailSource, identifier, mountID string) DetailModel {
	return DetailModel{
		ctx:        ctx,
		source:     source,
		identifier: identifier,
		meta:       food.NewPageMeta(identifier),
		mountID:    mountID,
		loading:    NewLoadingState("Loading..."),
		width:      defaultWidth,
	}
}

// Init starts the spinner, titles the window and issues the fetch (Bubble
// Tea interface).
func (m DetailModel) Init() tea.Cmd {
	return tea.Batch(
		m.loading.Init(),
		tea.SetWindowTitle(m.meta.Title),
		loadDetailCmd(m.ctx, m.source, m.identifier, m.mountID),
	)
}

func loadDetailCmd(ctx context.Context, src foodapi.DetailSource, identifier, mountID string) tea.Cmd {
	return func() tea.Msg {
		return detailLoadedMsg{mountID: mountID, record: foodapi.LoadDetail(ctx, src, identifier)}
	}
}

// Update handles the fetch result and key presses (Bubble Tea interface).
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case detailLoadedMsg:
		if msg.mountID != m.mountID {
			return m, nil
		}
		m.record = msg.record
		if m.record != nil {
			m.macros = food.Project(*m.record)
		} else {
			m.macros = [3]food.MacronutrientEntry{}
		}
		m.loading.Settle()
		return m, nil
	case spinner.TickMsg:
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyCtrlC:
			return m, tea.Quit
		case keyEsc, keyBackspace, keyLeft, keyB:
			return m, Back()
		}
	}
	return m, nil
}

// View renders the current state (Bubble Tea interface).
func (m DetailModel) View() string {
	if m.loading.IsLoading() {
		return RenderLoading(m.loading)
	}

	help := SubtleStyle.Render("esc back • q quit")
	if m.record == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			WarningStyle.Render(fmt.Sprintf("No data found for %q.", m.identifier)),
			"",
			help,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		SubtleStyle.Render("← back"),
		RenderFoodDetail(*m.record, m.macros, m.width),
		help,
	)
}

// IsLoading reports whether the fetch is in flight.
func (m DetailModel) IsLoading() bool { return m.loading.IsLoading() }

// Record returns the fetched record, nil while loading or after a failure.
func (m DetailModel) Record() *food.Record { return m.record }

// Macros returns the projected breakdown, nil when there is no record.
func (m DetailModel) Macros() []food.MacronutrientEntry {
	if m.record == nil {
		return nil
	}
	return m.macros[:]
}

// Identifier returns the route parameter.
func (m DetailModel) Identifier() string { return m.identifier }

// Meta returns the page metadata derived from the route parameter.
func (m DetailModel) Meta() food.PageMeta { return m.meta }
