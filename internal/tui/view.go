package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/factcard/internal/state"

	"github.com/charmbracelet/lipgloss"
)

const maxTextWidth = 72

// View renders the fact screen
func (m *FactModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		m.clearButtonArea()
		return modal.View(m.width, m.height)
	}

	return m.renderScreen()
}

func (m *FactModel) clearButtonArea() {
	m.buttonTop, m.buttonBottom = -1, -1
	m.buttonLeft, m.buttonRight = -1, -1
}

func (m *FactModel) renderScreen() string {
	statusLine := m.renderStatusLine()
	bodyHeight := max(0, m.height-lipgloss.Height(statusLine))

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite).
		Render(m.variant.Title)
	region := m.renderRegion()
	button := m.renderButton()

	body := lipgloss.JoinVertical(lipgloss.Center, title, "", region, "", button)

	// lipgloss.Place centers with the extra row below and the extra column
	// to the right; JoinVertical puts the extra column on the left.
	bodyH, bodyW := lipgloss.Height(body), lipgloss.Width(body)
	top := max(0, (bodyHeight-bodyH)/2)
	left := max(0, m.width-bodyW) / 2
	buttonW := lipgloss.Width(button)
	m.buttonBottom = top + bodyH - 1
	m.buttonTop = m.buttonBottom - lipgloss.Height(button) + 1
	m.buttonLeft = left + (bodyW-buttonW+1)/2
	m.buttonRight = m.buttonLeft + buttonW - 1

	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, placed, statusLine)
}

// renderRegion maps the fetch state to exactly one of the loading, error or
// data regions.
func (m *FactModel) renderRegion() string {
	textWidth := min(maxTextWidth, max(20, m.width-8))
	st := m.ctrl.State()

	switch {
	case st.IsLoading():
		return renderLoadingIndicator()
	case st.Status == state.Failed:
		return lipgloss.NewStyle().
			Width(textWidth).
			Padding(1, 2).
			Align(lipgloss.Center).
			Background(ColorRed).
			Foreground(ColorWhite).
			Render(ErrorMessage)
	default:
		return lipgloss.NewStyle().
			Width(textWidth).
			Padding(1, 2).
			Align(lipgloss.Center).
			Render(st.Value)
	}
}

func (m *FactModel) renderButton() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Foreground(ColorBlue).
		Bold(true).
		Padding(0, 2).
		Render(ButtonLabel)
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *FactModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	leftText := fmt.Sprintf("[%s]", m.variant.Name)

	var statusInfo string
	stats := m.ctrl.Stats()
	switch m.ctrl.State().Status {
	case state.Loading:
		statusInfo = "⟳ fetching"
	case state.Failed:
		statusInfo = fmt.Sprintf("✗ %d/%d ok", stats.Successes, stats.Attempts)
	case state.Loaded:
		statusInfo = fmt.Sprintf("✓ %d/%d ok", stats.Successes, stats.Attempts)
	}

	helpText := m.help.ShortHelpView(m.keys.ShortHelp())

	used := lipgloss.Width(leftText) + lipgloss.Width(statusInfo) + 4
	if m.width-used < lipgloss.Width(helpText) {
		helpText = ""
	}
	gap := max(1, m.width-used-lipgloss.Width(helpText))

	line := " " + leftText + " " + helpText + strings.Repeat(" ", gap) + statusInfo + " "
	return baseStyle.Width(m.width).MaxWidth(m.width).Render(line)
}
