package tui

import (
	"context"
	"time"

	"github.com/tinytelemetry/factcard/internal/model"
	"github.com/tinytelemetry/factcard/internal/state"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Region identifiers. The data region uses the variant's RegionID.
const (
	RegionLoading = "loading"
	RegionError   = "error"
)

const (
	// ButtonLabel is the text of the single refresh control.
	ButtonLabel = "Get me a new one"

	// ErrorMessage is shown for every failure kind.
	ErrorMessage = "Something went horribly wrong, please try again!"

	maxSamples = 60
)

// fetchSample records one applied fetch for the stats modal.
type fetchSample struct {
	latency time.Duration
	ok      bool
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// FactModel is the fact screen: one remote source, one refresh control.
type FactModel struct {
	ModalStackState

	variant model.Variant
	source  model.FactSource
	ctx     context.Context
	ctrl    *state.Controller
	keys    KeyMap
	help    help.Model
	logger  zerolog.Logger

	samples []fetchSample

	// Window dimensions
	width  int
	height int

	spinnerActive bool

	// Button cells from the last render, used for mouse hit testing.
	// -1 until rendered at the current size.
	buttonTop    int
	buttonBottom int
	buttonLeft   int
	buttonRight  int
}

// Option configures a FactModel.
type Option func(m *FactModel)

// WithContext sets the parent context for fetches. Cancelling it aborts
// any request still in flight.
func WithContext(ctx context.Context) Option {
	return func(m *FactModel) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(m *FactModel) {
		m.logger = l
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *FactModel) {
		m.keys = k
	}
}

// NewFactModel creates the fact screen for variant, fetching from source.
func NewFactModel(variant model.Variant, source model.FactSource, opts ...Option) *FactModel {
	m := &FactModel{
		variant:      variant,
		source:       source,
		ctx:          context.Background(),
		ctrl:         state.NewController(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		logger:       zerolog.Nop(),
		buttonTop:    -1,
		buttonBottom: -1,
		buttonLeft:   -1,
		buttonRight:  -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init triggers the single automatic fetch on mount.
func (m *FactModel) Init() tea.Cmd {
	return m.refresh()
}

// State returns the current fetch state.
func (m *FactModel) State() state.FetchState { return m.ctrl.State() }

// Stats returns refresh outcome counters.
func (m *FactModel) Stats() state.Stats { return m.ctrl.Stats() }

// Region returns the identifier of the region currently shown:
// "loading", "error", or the variant's data region id.
func (m *FactModel) Region() string {
	st := m.ctrl.State()
	switch {
	case st.IsLoading():
		return RegionLoading
	case st.Status == state.Failed:
		return RegionError
	default:
		return m.variant.RegionID
	}
}

// DisplayText returns the unstyled text of the current region.
func (m *FactModel) DisplayText() string {
	st := m.ctrl.State()
	switch {
	case st.IsLoading():
		return "Loading..."
	case st.Status == state.Failed:
		return ErrorMessage
	default:
		return st.Value
	}
}

// refresh starts a new fetch. Overlapping refreshes are allowed; only the
// newest one's result is rendered.
func (m *FactModel) refresh() tea.Cmd {
	id := m.ctrl.Begin()
	m.logger.Debug().Uint64("request", uint64(id)).Msgf("Fetching new %s", m.variant.Noun)
	return tea.Batch(m.fetchCmd(id), m.startSpinnerIfNeeded())
}

func (m *FactModel) fetchCmd(id state.RequestID) tea.Cmd {
	ctx, source := m.ctx, m.source
	if source == nil {
		return func() tea.Msg {
			return factLoadedMsg{id: id, err: errNoSource}
		}
	}
	return func() tea.Msg {
		start := time.Now()
		value, err := source.Fetch(ctx)
		return factLoadedMsg{id: id, value: value, err: err, latency: time.Since(start)}
	}
}

// applyResult settles a fetch, dropping results of superseded requests.
func (m *FactModel) applyResult(msg factLoadedMsg) {
	if !m.ctrl.Settle(msg.id, msg.value, msg.err) {
		m.logger.Debug().
			Uint64("request", uint64(msg.id)).
			Uint64("latest", uint64(m.ctrl.Latest())).
			Msg("dropping stale fetch result")
		return
	}

	m.samples = append(m.samples, fetchSample{latency: msg.latency, ok: msg.err == nil})
	if len(m.samples) > maxSamples {
		m.samples = m.samples[len(m.samples)-maxSamples:]
	}

	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msgf("Failed fetching %s", m.variant.Noun)
		return
	}
	m.logger.Info().Dur("latency", msg.latency).Msgf("Set %s: %s", m.variant.Noun, msg.value)
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *FactModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *FactModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *FactModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *FactModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// FactPage adapts FactModel to the Page interface.
type FactPage struct {
	Model *FactModel
}

// NewFactPage wraps a FactModel as a Page.
func NewFactPage(m *FactModel) *FactPage {
	return &FactPage{Model: m}
}

func (p *FactPage) ID() string { return "fact" }

func (p *FactPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *FactPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	return cmd, nil
}

func (p *FactPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}
