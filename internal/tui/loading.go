package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderLoadingIndicator renders an animated loading indicator.
// The frame is selected based on the current time so it animates on re-render.
func renderLoadingIndicator() string {
	frame := spinnerFrames[time.Now().UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]

	loadingStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	return loadingStyle.Render(frame + " Loading...")
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// startSpinnerIfNeeded starts the tick chain unless one is already running.
func (m *FactModel) startSpinnerIfNeeded() tea.Cmd {
	if m.spinnerActive {
		return nil
	}
	m.spinnerActive = true
	return spinnerTick()
}

// handleSpinnerTick re-schedules spinner ticks while a fetch is in flight.
func (m *FactModel) handleSpinnerTick() (tea.Model, tea.Cmd) {
	if m.ctrl.Loading() {
		return m, spinnerTick()
	}
	m.spinnerActive = false
	return m, nil
}
