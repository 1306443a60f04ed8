package tui

import (
	"time"

	"github.com/tinytelemetry/factcard/internal/state"
)

// factLoadedMsg carries the outcome of one fetch back to the Update loop.
type factLoadedMsg struct {
	id      state.RequestID
	value   string
	err     error
	latency time.Duration
}

// RefreshMsg asks the fact screen to refetch, exactly like pressing the button.
type RefreshMsg struct{}

// SpinnerTickMsg triggers a re-render for the loading spinner.
type SpinnerTickMsg struct{}
