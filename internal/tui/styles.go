package tui

import (
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors is the TUI palette.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
}{
	Primary: lipgloss.Color("#3F51B5"), // Indigo
	Muted:   lipgloss.Color("#757575"), // Gray
	Border:  lipgloss.Color("#E0E0E0"), // Light gray
	Text:    lipgloss.Color("#FFFFFF"),
}

// Styles holds the lipgloss styles of the TUI.
type Styles struct {
	App    lipgloss.Style
	Title  lipgloss.Style
	Footer lipgloss.Style
	Muted  lipgloss.Style
	Table  btable.Styles
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	tableStyles := btable.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Border).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(Colors.Text).
		Background(Colors.Primary).
		Bold(false)

	return Styles{
		App:    lipgloss.NewStyle().Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Text).Background(Colors.Primary).Padding(0, 1),
		Footer: lipgloss.NewStyle().Foreground(Colors.Muted),
		Muted:  lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		Table:  tableStyles,
	}
}
