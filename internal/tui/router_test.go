package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(src *fakeSource) AppModel {
	return NewAppModel(context.Background(), Sources{Catalog: src, Detail: src}, HomeRoute())
}

func step(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	am, ok := updated.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "/", HomeRoute().String())
	assert.Equal(t, "/food/green-apple", DetailRoute("green-apple").String())
}

func TestAppModel_Navigation(t *testing.T) {
	src := newFakeSource()
	app := newTestApp(src)

	require.IsType(t, HomeModel{}, app.Current())
	assert.Equal(t, []Route{HomeRoute()}, app.History())
	assert.NotNil(t, app.Init())

	app, cmd := step(t, app, NavigateMsg{Route: DetailRoute("kale")})
	assert.NotNil(t, cmd, "mounting issues the detail fetch")
	assert.Equal(t, []Route{HomeRoute(), DetailRoute("kale")}, app.History())

	detail, ok := app.Current().(DetailModel)
	require.True(t, ok)
	assert.Equal(t, "kale", detail.Identifier())
	assert.True(t, detail.IsLoading())

	app, cmd = step(t, app, BackMsg{})
	assert.NotNil(t, cmd, "returning remounts the home view")
	assert.Equal(t, []Route{HomeRoute()}, app.History())
	home, ok := app.Current().(HomeModel)
	require.True(t, ok)
	assert.True(t, home.IsLoading(), "home view reloads its catalog")

	app, cmd = step(t, app, BackMsg{})
	assert.Nil(t, cmd, "back at the root is a no-op")
	assert.Len(t, app.History(), 1)
}

func TestAppModel_ForwardsToMountedView(t *testing.T) {
	src := newFakeSource()
	app := newTestApp(src)
	app, _ = step(t, app, NavigateMsg{Route: DetailRoute("kale")})

	detail := app.Current().(DetailModel)
	app, _ = step(t, app, loadDetailCmd(context.Background(), src, "kale", detail.mountID)())

	loaded := app.Current().(DetailModel)
	assert.False(t, loaded.IsLoading())
	require.NotNil(t, loaded.Record())
	assert.Equal(t, "Kale", loaded.Record().Name)
	assert.Contains(t, app.View(), "Vitamins: A, C")
}

func TestAppModel_DiscardsResultsForInactiveMount(t *testing.T) {
	src := newFakeSource()
	app := newTestApp(src)

	app, _ = step(t, app, NavigateMsg{Route: DetailRoute("kale")})
	first := app.Current().(DetailModel).mountID

	app, _ = step(t, app, BackMsg{})
	app, _ = step(t, app, NavigateMsg{Route: DetailRoute("kale")})
	second := app.Current().(DetailModel).mountID
	require.NotEqual(t, first, second)

	app, _ = step(t, app, loadDetailCmd(context.Background(), src, "kale", first)())
	assert.True(t, app.Current().(DetailModel).IsLoading(), "result for the torn-down view is dropped")
}

func TestAppModel_WindowSizeReachesNewViews(t *testing.T) {
	app := newTestApp(newFakeSource())
	app, _ = step(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})
	app, _ = step(t, app, NavigateMsg{Route: DetailRoute("kale")})

	assert.Equal(t, 120, app.Current().(DetailModel).width)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	app := newTestApp(newFakeSource())
	_, cmd := step(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_BackFromDetailKey(t *testing.T) {
	app := newTestApp(newFakeSource())
	app, _ = step(t, app, NavigateMsg{Route: DetailRoute("kale")})

	app, cmd := step(t, app, keyType(tea.KeyEsc))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, BackMsg{}, msg)

	app, _ = step(t, app, msg)
	assert.IsType(t, HomeModel{}, app.Current())
}
