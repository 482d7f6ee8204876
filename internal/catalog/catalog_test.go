package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/catalog"
	"bistro/internal/domain"
)

func titles(items []domain.CatalogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestList_StableOrder(t *testing.T) {
	s := catalog.Default()
	first := titles(s.List())
	second := titles(s.List())

	assert.Equal(t, []string{"Boeuf Bourguignon", "Coq au Vin", "Ratatouille", "Croque Monsieur"}, first)
	assert.Equal(t, first, second)
}

func TestList_ReturnsCopy(t *testing.T) {
	s := catalog.Default()
	items := s.List()
	items[0].Title = "changed"

	assert.Equal(t, "Boeuf Bourguignon", s.List()[0].Title)
}

func TestFilter(t *testing.T) {
	s := catalog.Default()

	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"veg and rat", "Veg", "rat", []string{"Ratatouille"}},
		{"all no search", domain.CategoryAll, "", []string{"Boeuf Bourguignon", "Coq au Vin", "Ratatouille", "Croque Monsieur"}},
		{"empty category means all", "", "co", []string{"Coq au Vin", "Croque Monsieur"}},
		{"case insensitive", "All", "BOEUF", []string{"Boeuf Bourguignon"}},
		{"category only", "Main", "", []string{"Boeuf Bourguignon", "Coq au Vin"}},
		{"and composition", "Main", "croque", []string{}},
		{"unknown category", "Dessert", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.category, tt.search)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "Main", "Veg", "Snack"}, catalog.Default().Categories())
}

func TestFind(t *testing.T) {
	s := catalog.Default()

	it, ok := s.Find("3")
	require.True(t, ok)
	assert.Equal(t, "Ratatouille", it.Title)
	assert.Equal(t, domain.ItemPayload{Title: "Ratatouille", Price: "14,50€", Image: "assets/details-2.png"}, it.Payload())

	_, ok = s.Find("99")
	assert.False(t, ok)
}
