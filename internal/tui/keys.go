package tui

// Key names as reported by tea.KeyMsg.String().
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keySpace     = " "
	keyBackspace = "backspace"
	keyLeft      = "left"
	keyB         = "b"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	minChartWidth = 10
	borderPadding = 2
)
