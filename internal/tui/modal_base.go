package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderModalFrame renders content inside a bordered, scrollable, centered modal.
func renderModalFrame(vp *viewport.Model, title, content string, statusItems []string, width, height int) string {
	modalWidth := max(20, width-8)   // 4 chars margin on each side
	modalHeight := max(8, height-4) // 2 lines margin top and bottom

	// Account for borders and headers
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(content)

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render(strings.Join(statusItems, " | "))

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// scrollViewport handles the scroll keys and wheel shared by all modals.
// It reports whether msg was consumed.
func scrollViewport(vp *viewport.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			vp.ScrollUp(1)
			return true, nil
		case "down", "j":
			vp.ScrollDown(1)
			return true, nil
		case "pgup":
			vp.HalfPageUp()
			return true, nil
		case "pgdown":
			vp.HalfPageDown()
			return true, nil
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return true, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			vp.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			vp.ScrollDown(1)
		}
		return true, nil
	}
	return false, nil
}
