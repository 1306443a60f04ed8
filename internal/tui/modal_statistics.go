package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsModal shows refresh counters and a latency chart of recent fetches.
type StatsModal struct {
	keys       KeyMap
	viewport   viewport.Model
	renderBody func(width int) string
}

func NewStatsModal(m *FactModel) *StatsModal {
	return &StatsModal{
		keys:     m.keys,
		viewport: viewport.New(80, 20),
		renderBody: func(width int) string {
			return m.renderStatsContent(width)
		},
	}
}

func (s *StatsModal) ID() string { return "stats" }

func (s *StatsModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(km, s.keys.Stats, s.keys.Escape, s.keys.Quit) {
			return true, nil
		}
	}
	if handled, cmd := scrollViewport(&s.viewport, msg); handled {
		return false, cmd
	}
	return false, nil
}

func (s *StatsModal) View(width, height int) string {
	contentWidth := max(20, width-8) - 4
	return renderModalFrame(&s.viewport, "Fetch Statistics", s.renderBody(contentWidth),
		[]string{"up/down/Wheel: Scroll", "i: Toggle Stats", "ESC: Close"}, width, height)
}

// renderStatsContent renders counters followed by the latency chart.
func (m *FactModel) renderStatsContent(width int) string {
	stats := m.ctrl.Stats()
	labelStyle := lipgloss.NewStyle().Foreground(ColorGray).Width(16)

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Variant", m.variant.Name)
	row("Endpoint", m.variant.Endpoint)
	row("Field", m.variant.Field)
	row("State", m.ctrl.State().Status.String())
	row("Attempts", fmt.Sprintf("%d", stats.Attempts))
	row("Successes", fmt.Sprintf("%d", stats.Successes))
	row("Failures", fmt.Sprintf("%d", stats.Failures))
	row("Stale dropped", fmt.Sprintf("%d", stats.Stale))
	if n := len(m.samples); n > 0 {
		row("Last latency", m.samples[n-1].latency.Round(time.Millisecond).String())
		row("Avg latency", averageLatency(m.samples).Round(time.Millisecond).String())
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Latency (recent fetches, red = failed)"))
	b.WriteString("\n")
	b.WriteString(renderLatencyChart(m.samples, width, 8))

	return b.String()
}

func averageLatency(samples []fetchSample) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range samples {
		total += s.latency
	}
	return total / time.Duration(len(samples))
}

// renderLatencyChart draws one bar per sample, newest on the right.
func renderLatencyChart(samples []fetchSample, width, height int) string {
	if len(samples) == 0 {
		return lipgloss.NewStyle().Foreground(ColorGray).Italic(true).Render("No fetches yet")
	}

	chartWidth := max(20, width)
	maxBars := chartWidth / 2
	start := max(0, len(samples)-maxBars)

	bc := barchart.New(chartWidth, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	okStyle := lipgloss.NewStyle().Foreground(ColorGreen).Background(ColorGreen)
	failStyle := lipgloss.NewStyle().Foreground(ColorRed).Background(ColorRed)

	for _, s := range samples[start:] {
		style := okStyle
		name := "OK"
		if !s.ok {
			style = failStyle
			name = "FAIL"
		}
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: name, Value: float64(max(1, s.latency.Milliseconds())), Style: style},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
