package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles shared by the menus and the scoreboard.
type Theme struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Controls    lipgloss.Style
	Won         lipgloss.Style
	Lost        lipgloss.Style
	Border      lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Won:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Lost:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// MonochromeTheme drops all colors, for terminals without color support.
func MonochromeTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Faint(true),
		ItemNormal:  lipgloss.NewStyle(),
		ItemActive:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Controls:    lipgloss.NewStyle().Faint(true),
		Won:         lipgloss.NewStyle().Bold(true),
		Lost:        lipgloss.NewStyle(),
		Border:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}

// centerText centers text within given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
