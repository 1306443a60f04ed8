package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/tinytelemetry/factcard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// stubSource returns scripted values and errors in call order, repeating
// the last value once the script is exhausted.
type stubSource struct {
	mu     sync.Mutex
	values []string
	errs   []error
	calls  int
}

func (s *stubSource) Fetch(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if len(s.values) == 0 {
		return "", nil
	}
	if i < len(s.values) {
		return s.values[i], nil
	}
	return s.values[len(s.values)-1], nil
}

func (s *stubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func catFactVariant(t *testing.T) model.Variant {
	t.Helper()
	v, err := model.LookupVariant(model.VariantCatFact)
	if err != nil {
		t.Fatalf("LookupVariant: %v", err)
	}
	return v
}

// runCmd executes cmd, expanding batches, and returns every produced message.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// fetchResults runs cmd and keeps only fetch results.
func fetchResults(t *testing.T, cmd tea.Cmd) []factLoadedMsg {
	t.Helper()
	var out []factLoadedMsg
	for _, msg := range runCmd(t, cmd) {
		if loaded, ok := msg.(factLoadedMsg); ok {
			out = append(out, loaded)
		}
	}
	return out
}

// settle runs cmd and feeds every fetch result back into m.
func settle(t *testing.T, m *FactModel, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range fetchResults(t, cmd) {
		m.Update(msg)
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
