package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles used around the game canvas.
type Theme struct {
	// Status bar
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDOn        lipgloss.Style
	HUDOff       lipgloss.Style
	HUDSeparator lipgloss.Style

	// Messages shown instead of the canvas
	Notice lipgloss.Style

	// Difficulty picker
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDOn:        lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
		HUDOff:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor colour.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDOn = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.HUDOff = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.Notice = lipgloss.NewStyle().Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	return theme
}
