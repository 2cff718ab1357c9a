package tui

import "github.com/charmbracelet/lipgloss"

// Macro chart palette, assigned by entry index: carbohydrates, protein, fat.
//
//nolint:gochecknoglobals // Fixed palette.
var MacroPalette = [3]lipgloss.Color{"#0088FE", "#00C49F", "#FFBB28"}

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are package-level by convention.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8A8A8"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFFF"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF00"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	TriggerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#A8A8A8")).
			Padding(0, 1)

	OptionSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4"))
)
