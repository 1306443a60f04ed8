package model

import "testing"

func TestLookupVariant_BuiltIns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantField string
		wantID    string
	}{
		{name: "catfact", wantField: "text", wantID: "fact"},
		{name: "joke", wantField: "value.joke", wantID: "joke"},
		{name: " JOKE ", wantField: "value.joke", wantID: "joke"},
	}

	for _, tt := range tests {
		v, err := LookupVariant(tt.name)
		if err != nil {
			t.Fatalf("LookupVariant(%q): %v", tt.name, err)
		}
		if v.Field != tt.wantField {
			t.Errorf("LookupVariant(%q).Field = %q, want %q", tt.name, v.Field, tt.wantField)
		}
		if v.RegionID != tt.wantID {
			t.Errorf("LookupVariant(%q).RegionID = %q, want %q", tt.name, v.RegionID, tt.wantID)
		}
	}
}

func TestLookupVariant_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := LookupVariant("dogfact"); err == nil {
		t.Fatal("LookupVariant(dogfact) error = nil, want error")
	}
}

func TestVariant_WithOverrides(t *testing.T) {
	t.Parallel()

	base, _ := LookupVariant(VariantCatFact)

	got := base.WithOverrides("http://localhost:8089/facts/random", "")
	if got.Endpoint != "http://localhost:8089/facts/random" {
		t.Errorf("endpoint = %q, want override", got.Endpoint)
	}
	if got.Field != base.Field {
		t.Errorf("field = %q, want %q", got.Field, base.Field)
	}
	if base.Endpoint == got.Endpoint {
		t.Error("base variant was mutated")
	}
}
