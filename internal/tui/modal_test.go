package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStatsModal_OpenAndClose(t *testing.T) {
	t.Parallel()

	m := NewFactModel(catFactVariant(t), &stubSource{values: []string{"x"}})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	settle(t, m, m.Init())

	m.Update(keyPress("i"))
	if top := m.TopModal(); top == nil || top.ID() != "stats" {
		t.Fatalf("top modal = %v, want stats", top)
	}

	view := m.View()
	if !strings.Contains(view, "Fetch Statistics") {
		t.Fatal("stats modal not rendered")
	}
	if m.buttonTop != -1 {
		t.Fatalf("button rows = %d, want hidden while modal is open", m.buttonTop)
	}

	m.Update(keyPress("esc"))
	if m.HasModal() {
		t.Fatal("esc did not close the stats modal")
	}
}

func TestStatsModal_RefreshKeyDoesNotFetch(t *testing.T) {
	t.Parallel()

	src := &stubSource{values: []string{"x"}}
	m := NewFactModel(catFactVariant(t), src)
	settle(t, m, m.Init())

	m.Update(keyPress("i"))
	_, cmd := m.Update(keyPress("r"))
	settle(t, m, cmd)

	if got := src.Calls(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1 while modal focused", got)
	}
}

func TestPushModal_Deduplicates(t *testing.T) {
	t.Parallel()

	m := NewFactModel(catFactVariant(t), &stubSource{})
	m.PushModal(NewHelpModal(m))
	m.PushModal(NewHelpModal(m))

	if got := len(m.modalStack); got != 1 {
		t.Fatalf("modal stack = %d, want 1", got)
	}
}

func TestHelpModal_ListsRefreshBinding(t *testing.T) {
	t.Parallel()

	m := NewFactModel(catFactVariant(t), &stubSource{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(keyPress("?"))

	if !strings.Contains(m.View(), ButtonLabel) {
		t.Fatal("help modal does not describe the refresh binding")
	}

	m.Update(keyPress("?"))
	if m.HasModal() {
		t.Fatal("? did not toggle the help modal closed")
	}
}

func TestRenderLatencyChart_Empty(t *testing.T) {
	t.Parallel()

	if got := renderLatencyChart(nil, 40, 6); !strings.Contains(got, "No fetches yet") {
		t.Fatalf("empty chart = %q, want placeholder", got)
	}
}
