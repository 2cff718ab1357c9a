package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingState is the per-view loading flag plus its spinner. The flag
// starts set and is cleared exactly once, by Settle.
type LoadingState struct {
	spinner   spinner.Model
	message   string
	isLoading bool
}

// NewLoadingState returns a loading state that is still loading.
func NewLoadingState(message string) *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle
	return &LoadingState{spinner: s, message: message, isLoading: true}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner while loading.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	if !l.isLoading {
		return nil
	}
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(tick)
		return cmd
	}
	return nil
}

// Settle clears the loading flag. It reports whether this call changed it.
func (l *LoadingState) Settle() bool {
	if !l.isLoading {
		return false
	}
	l.isLoading = false
	return true
}

// IsLoading reports whether the fetch is still in flight.
func (l *LoadingState) IsLoading() bool {
	return l.isLoading
}

// RenderLoading renders the spinner line. A nil state renders "Loading...".
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return "Loading..."
	}
	return fmt.Sprintf("\n %s %s\n\n", l.spinner.View(), l.message)
}
