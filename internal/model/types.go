package model

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in variant names.
const (
	VariantCatFact = "catfact"
	VariantJoke    = "joke"
)

// Variant describes one remote source the fact screen can display:
// where to fetch it, which JSON field holds the text, and how to label it.
type Variant struct {
	Name     string
	Title    string
	Endpoint string
	Field    string // gjson path, e.g. "text" or "value.joke"
	RegionID string // identifier of the data region ("fact", "joke")
	Noun     string // used in log lines: "cat fact", "joke"
}

var builtinVariants = map[string]Variant{
	VariantCatFact: {
		Name:     VariantCatFact,
		Title:    "Your daily cat fact",
		Endpoint: "https://cat-fact.herokuapp.com/facts/random?animal_type=cat&amount=1",
		Field:    "text",
		RegionID: "fact",
		Noun:     "cat fact",
	},
	VariantJoke: {
		Name:     VariantJoke,
		Title:    "Your daily joke",
		Endpoint: "https://api.icndb.com/jokes/random",
		Field:    "value.joke",
		RegionID: "joke",
		Noun:     "joke",
	},
}

// LookupVariant returns the built-in variant with the given name.
func LookupVariant(name string) (Variant, error) {
	v, ok := builtinVariants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

// VariantNames lists built-in variant names in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(builtinVariants))
	for name := range builtinVariants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides returns a copy of v with a non-empty endpoint or field replaced.
func (v Variant) WithOverrides(endpoint, field string) Variant {
	if endpoint != "" {
		v.Endpoint = endpoint
	}
	if field != "" {
		v.Field = field
	}
	return v
}
