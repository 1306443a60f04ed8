package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal displays the key bindings.
type HelpModal struct {
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
}

func NewHelpModal(m *FactModel) *HelpModal {
	h := help.New()
	h.ShowAll = true
	return &HelpModal{
		keys:     m.keys,
		help:     h,
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(km, h.keys.Help, h.keys.Escape, h.keys.Quit) {
			return true, nil
		}
	}
	if handled, cmd := scrollViewport(&h.viewport, msg); handled {
		return false, cmd
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return false, cmd
}

func (h *HelpModal) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		"Press the button (or enter/r, or click it) to fetch a new one.",
		"Only the newest request is shown; older answers are dropped.",
		"",
		h.help.FullHelpView(h.keys.FullHelp()),
	)
	return renderModalFrame(&h.viewport, "Help", content, []string{"up/down/Wheel: Scroll", "ESC: Close"}, width, height)
}
