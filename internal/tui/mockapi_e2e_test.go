package tui

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tinytelemetry/factcard/internal/fetch"
	"github.com/tinytelemetry/factcard/internal/mockapi"
	"github.com/tinytelemetry/factcard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
)

func newMockFactModel(t *testing.T, variantName string, statuses []int) *FactModel {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(mockapi.NewServer("", mockapi.WithStatuses(statuses), mockapi.WithSeed(3)).Handler())
	t.Cleanup(srv.Close)

	variant, err := model.LookupVariant(variantName)
	if err != nil {
		t.Fatalf("LookupVariant: %v", err)
	}
	path := "/facts/random?animal_type=cat&amount=1"
	if variantName == model.VariantJoke {
		path = "/jokes/random"
	}
	variant = variant.WithOverrides(srv.URL+path, "")

	f, err := fetch.New(variant.Endpoint, fetch.WithField(variant.Field), fetch.WithTransport(srv.Client()))
	if err != nil {
		t.Fatalf("fetch.New: %v", err)
	}

	m := NewFactModel(variant, f)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func TestMockAPI_FactThenNewFactAfterButton(t *testing.T) {
	m := newMockFactModel(t, model.VariantCatFact, []int{200})
	settle(t, m, m.Init())

	if got := m.Region(); got != "fact" {
		t.Fatalf("region = %q, want fact", got)
	}
	first := m.DisplayText()
	if first == "" || !strings.Contains(m.View(), strings.Fields(first)[0]) {
		t.Fatalf("first fact %q not rendered", first)
	}

	_, cmd := m.Update(keyPress("enter"))
	settle(t, m, cmd)

	if got := m.Stats().Attempts; got != 2 {
		t.Fatalf("attempts = %d, want 2", got)
	}
	if got := m.Region(); got != "fact" {
		t.Fatalf("region after refresh = %q, want fact", got)
	}
}

func TestMockAPI_JokeVariant(t *testing.T) {
	m := newMockFactModel(t, model.VariantJoke, nil)
	settle(t, m, m.Init())

	if got := m.Region(); got != "joke" {
		t.Fatalf("region = %q, want joke", got)
	}
	if m.DisplayText() == "" {
		t.Fatal("joke text is empty")
	}
}

func TestMockAPI_ErrorThenRecover(t *testing.T) {
	m := newMockFactModel(t, model.VariantCatFact, []int{500, 200})
	settle(t, m, m.Init())

	if got := m.Region(); got != RegionError {
		t.Fatalf("region = %q, want error", got)
	}

	_, cmd := m.Update(keyPress("r"))
	settle(t, m, cmd)

	if got := m.Region(); got != "fact" {
		t.Fatalf("region after retry = %q, want fact", got)
	}
}
