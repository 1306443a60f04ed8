package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *FactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// The app may show a too-small notice instead of this page, so the
		// old button area must not stay clickable.
		m.clearButtonArea()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case RefreshMsg:
		return m, m.refresh()

	case factLoadedMsg:
		m.applyResult(msg)
		return m, nil

	case SpinnerTickMsg:
		return m.handleSpinnerTick()
	}

	return m, nil
}

func (m *FactModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the key first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()
	case key.Matches(msg, m.keys.Stats):
		m.PushModal(NewStatsModal(m))
	case key.Matches(msg, m.keys.Help):
		m.PushModal(NewHelpModal(m))
	}
	return m, nil
}

// handleMouseEvent treats a left click on the button as a button press.
func (m *FactModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.onButton(msg.X, msg.Y) {
		return m, nil
	}
	return m, m.refresh()
}

func (m *FactModel) onButton(x, y int) bool {
	if m.buttonTop < 0 {
		return false
	}
	return y >= m.buttonTop && y <= m.buttonBottom && x >= m.buttonLeft && x <= m.buttonRight
}
