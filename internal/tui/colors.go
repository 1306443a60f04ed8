package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the screen, status line and modals.
var (
	ColorNavy   = lipgloss.Color("#1E2A47")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("244")
	ColorBlue   = lipgloss.Color("39")
	ColorRed    = lipgloss.Color("196")
	ColorOrange = lipgloss.Color("208")
	ColorGreen  = lipgloss.Color("#35DD2F")
)
