package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nutrispark/internal/food"
	listview "github.com/rshade/nutrispark/internal/tui/list"
)

// Selector copy.
const (
	selectorPlaceholder = "Select food..."
	searchPlaceholder   = "Search food..."
	emptyOptionsText    = "No food found."
	selectorListHeight  = 8
	selectorChromeRows  = 10
	selectorWidth       = 32
	searchCharLimit     = 64
)

// Selector is the searchable food picker. It is closed or open; while open
// it filters the catalog by the text typed in its search box. Selecting the
// already chosen food clears the choice.
type Selector struct {
	options []food.Summary

	isOpen bool
	chosen string

	input textinput.Model
	list  *listview.VirtualListModel[food.Summary]
}

// NewSelector returns a closed selector with no choice.
func NewSelector(options []food.Summary) *Selector {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = searchCharLimit
	ti.Width = selectorWidth - borderPadding

	s := &Selector{input: ti}
	s.list = listview.NewVirtualListModel[food.Summary](nil, selectorListHeight, selectorWidth, s.renderOption)
	s.SetOptions(options)
	return s
}

// SetOptions replaces the catalog and refreshes the visible options.
func (s *Selector) SetOptions(options []food.Summary) {
	s.options = options
	s.refresh()
}

// Open shows the option list with an empty search.
func (s *Selector) Open() tea.Cmd {
	s.isOpen = true
	s.input.SetValue("")
	s.refresh()
	return s.input.Focus()
}

// SetFilter replaces the search text and recomputes the visible options.
func (s *Selector) SetFilter(text string) {
	s.input.SetValue(text)
	s.refresh()
}

// Select toggles identifier as the choice and closes the selector.
func (s *Selector) Select(identifier string) {
	if identifier == s.chosen {
		s.chosen = ""
	} else {
		s.chosen = identifier
	}
	s.close()
}

// Dismiss closes the selector, keeping the current choice.
func (s *Selector) Dismiss() {
	s.close()
}

func (s *Selector) close() {
	s.isOpen = false
	s.input.Blur()
}

func (s *Selector) refresh() {
	s.list.SetItems(food.Filter(s.options, s.input.Value()))
	s.list.SetSelected(0)
}

// Resize fits the option list to a terminal of the given height.
func (s *Selector) Resize(termHeight int) {
	s.list.SetHeight(min(selectorListHeight, termHeight-selectorChromeRows))
}

// IsOpen reports whether the option list is shown.
func (s *Selector) IsOpen() bool { return s.isOpen }

// Chosen returns the chosen identifier, "" for none.
func (s *Selector) Chosen() string { return s.chosen }

// Filter returns the current search text.
func (s *Selector) Filter() string { return s.input.Value() }

// Options returns the full catalog.
func (s *Selector) Options() []food.Summary { return s.options }

// Visible returns the options matching the search text.
func (s *Selector) Visible() []food.Summary { return s.list.Items() }

// Highlighted returns the option under the cursor, or nil.
func (s *Selector) Highlighted() *food.Summary { return s.list.GetSelectedItem() }

// Label is the trigger text: the chosen food's name, or the placeholder when
// nothing is chosen or the choice is not in the catalog.
func (s *Selector) Label() string {
	if opt, ok := food.Lookup(s.options, s.chosen); ok {
		return opt.DisplayLabel
	}
	return selectorPlaceholder
}

// Update applies a key press to the selector.
func (s *Selector) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !s.isOpen {
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	if !s.isOpen {
		switch keyMsg.String() {
		case keyEnter, keySpace, "down":
			return s.Open()
		}
		return nil
	}

	switch keyMsg.String() {
	case keyEsc:
		s.Dismiss()
		return nil
	case keyEnter:
		if opt := s.Highlighted(); opt != nil {
			s.Select(opt.Identifier)
		}
		return nil
	case "up", "down", "pgup", "pgdown", "home", "end", "ctrl+p", "ctrl+n":
		s.list.Update(keyMsg)
		return nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(keyMsg)
	if s.input.Value() != before {
		s.refresh()
	}
	return cmd
}

// View renders the trigger and, while open, the search box and options.
func (s *Selector) View() string {
	label := s.Label()
	if s.chosen == "" {
		label = SubtleStyle.Render(label)
	}
	trigger := TriggerStyle.Width(selectorWidth).Render(label + " ▾")

	if !s.isOpen {
		return trigger
	}

	var body string
	if s.list.ItemCount() == 0 {
		body = SubtleStyle.Render(emptyOptionsText)
	} else {
		body = s.list.View()
	}

	panel := BoxStyle.Width(selectorWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, s.input.View(), body),
	)
	return lipgloss.JoinVertical(lipgloss.Left, trigger, panel)
}

func (s *Selector) renderOption(opt food.Summary, highlighted bool) string {
	check := "  "
	if opt.Identifier == s.chosen {
		check = "✓ "
	}
	line := check + opt.DisplayLabel
	if pad := selectorWidth - borderPadding - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	if highlighted {
		return OptionSelectedStyle.Render(line)
	}
	return line
}
