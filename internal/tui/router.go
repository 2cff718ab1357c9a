package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/nutrispark/internal/foodapi"
	"github.com/rshade/nutrispark/internal/logging"
)

// RouteName identifies a view.
type RouteName int

const (
	// RouteHome is the catalog search view.
	RouteHome RouteName = iota
	// RouteDetail is the nutrient detail view of one food.
	RouteDetail
)

// Route is a view plus its parameter.
type Route struct {
	Name       RouteName
	Identifier string
}

// HomeRoute returns the route of the search view.
func HomeRoute() Route { return Route{Name: RouteHome} }

// DetailRoute returns the route of the detail view for identifier.
func DetailRoute(identifier string) Route {
	return Route{Name: RouteDetail, Identifier: identifier}
}

func (r Route) String() string {
	if r.Name == RouteDetail {
		return fmt.Sprintf("/food/%s", r.Identifier)
	}
	return "/"
}

// NavigateMsg asks the app to push and mount a route.
type NavigateMsg struct {
	Route Route
}

// BackMsg asks the app to return to the previous route.
type BackMsg struct{}

// Navigate returns a command emitting NavigateMsg.
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// Back returns a command emitting BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Sources are the data sources the views load from.
type Sources struct {
	Catalog foodapi.CatalogSource
	Detail  foodapi.DetailSource
}

// AppModel owns the route history and the mounted view. Every navigation
// mounts a fresh view, so each view issues its own fetch on entry.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AppModel struct {
	ctx     context.Context
	sources Sources

	history []Route
	current tea.Model

	width  int
	height int
}

// NewAppModel creates the app with start mounted as the only history entry.
func NewAppModel(ctx context.Context, sources Sources, start Route) AppModel {
	m := AppModel{
		ctx:     ctx,
		sources: sources,
		history: []Route{start},
	}
	m.current = m.build(start)
	return m
}

// Init initializes the first mounted view (Bubble Tea interface).
func (m AppModel) Init() tea.Cmd {
	return m.current.Init()
}

// Update routes navigation messages and forwards everything else to the
// mounted view (Bubble Tea interface).
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case NavigateMsg:
		m.history = append(m.history, msg.Route)
		return m.mount(msg.Route)
	case BackMsg:
		if len(m.history) <= 1 {
			return m, nil
		}
		m.history = m.history[:len(m.history)-1]
		return m.mount(m.history[len(m.history)-1])
	}

	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

// View renders the mounted view (Bubble Tea interface).
func (m AppModel) View() string {
	return m.current.View()
}

// History returns the route stack, oldest first.
func (m AppModel) History() []Route {
	return m.history
}

// Current returns the mounted view.
func (m AppModel) Current() tea.Model {
	return m.current
}

func (m AppModel) mount(route Route) (tea.Model, tea.Cmd) {
	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "router").
		Str("route", route.String()).
		Int("depth", len(m.history)).
		Msg("mounting view")

	m.current = m.build(route)
	if m.width > 0 {
		m.current, _ = m.current.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return m, m.current.Init()
}

// build creates the view for route with a fresh mount ID. Loader results
// carry the ID so a view ignores results fetched for an earlier mount.
func (m AppModel) build(route Route) tea.Model {
	mountID := logging.NewTraceID()
	ctx := logging.ContextWithTraceID(m.ctx, mountID)

	switch route.Name {
	case RouteDetail:
		return NewDetailModel(ctx, m.sources.Detail, route.Identifier, mountID)
	case RouteHome:
		return NewHomeModel(ctx, m.sources.Catalog, mountID)
	default:
		return NewHomeModel(ctx, m.sources.Catalog, mountID)
	}
}
