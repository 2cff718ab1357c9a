package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nutrispark/internal/food"
	"github.com/rshade/nutrispark/internal/foodapi"
)

// catalogLoadedMsg carries the catalog fetched for one home mount.
type catalogLoadedMsg struct {
	mountID string
	options []food.Summary
}

// HomeModel is the landing view: it loads the catalog once and lets the user
// pick a food, navigating to its detail view on selection.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type HomeModel struct {
	ctx     context.Context
	catalog foodapi.CatalogSource
	mountID string

	loading   *LoadingState
	selector  *Selector
	navigator *Navigator
}

// NewHomeModel creates the landing view for one mount.
func NewHomeModel(ctx context.Context, catalog foodapi.CatalogSource, mountID string) HomeModel {
	return HomeModel{
		ctx:       ctx,
		catalog:   catalog,
		mountID:   mountID,
		loading:   NewLoadingState("Loading foods..."),
		selector:  NewSelector(nil),
		navigator: &Navigator{},
	}
}

// Init starts the spinner and the catalog fetch (Bubble Tea interface).
func (m HomeModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), loadCatalogCmd(m.ctx, m.catalog, m.mountID))
}

func loadCatalogCmd(ctx context.Context, src foodapi.CatalogSource, mountID string) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{mountID: mountID, options: foodapi.LoadCatalog(ctx, src)}
	}
}

// Update handles catalog results and key presses (Bubble Tea interface).
func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.selector.Resize(msg.Height)
		return m, nil
	case catalogLoadedMsg:
		if msg.mountID != m.mountID {
			return m, nil
		}
		m.selector.SetOptions(msg.options)
		m.loading.Settle()
		return m, nil
	case spinner.TickMsg:
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.selector.Update(msg)
}

func (m HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		return m, tea.Quit
	}
	if m.loading.IsLoading() {
		if msg.String() == keyQuit {
			return m, tea.Quit
		}
		return m, nil
	}
	if !m.selector.IsOpen() && msg.String() == keyQuit {
		return m, tea.Quit
	}

	cmd := m.selector.Update(msg)
	if id, ok := m.navigator.Observe(m.selector.Chosen()); ok {
		return m, tea.Batch(cmd, Navigate(DetailRoute(id)))
	}
	return m, cmd
}

// View renders the landing view (Bubble Tea interface).
func (m HomeModel) View() string {
	title := TitleStyle.Render("Nutrispark")
	if m.loading.IsLoading() {
		return lipgloss.JoinVertical(lipgloss.Left, title, RenderLoading(m.loading))
	}

	help := "enter open • type to search • ↑/↓ move • enter select • esc close • q quit"
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.selector.View(),
		"",
		SubtleStyle.Render(help),
	)
}

// IsLoading reports whether the catalog fetch is in flight.
func (m HomeModel) IsLoading() bool { return m.loading.IsLoading() }

// Selector returns the food picker.
func (m HomeModel) Selector() *Selector { return m.selector }
