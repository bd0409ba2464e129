package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the menu screens.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Value      lipgloss.Style
	Highlight  lipgloss.Style

	Help   lipgloss.Style
	Status lipgloss.Style
	Empty  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		PanelTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),

		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

var uiTheme = DefaultTheme()
