// Package catalog holds the static, read-only menu.
package catalog

import (
	"strings"

	"bistro/internal/domain"
)

// Store serves a fixed list of items in a stable order.
type Store struct {
	items []domain.CatalogItem
}

// New creates a Store over items. The slice is copied.
func New(items []domain.CatalogItem) *Store {
	return &Store{items: append([]domain.CatalogItem(nil), items...)}
}

// Default returns the store with the built-in menu.
func Default() *Store {
	return New(defaultItems)
}

// List returns every item in catalog order.
func (s *Store) List() []domain.CatalogItem {
	return append([]domain.CatalogItem{}, s.items...)
}

// Filter returns items matching category AND containing search in the title
// (case-insensitive). An empty category behaves like domain.CategoryAll and
// an empty search matches everything.
func (s *Store) Filter(category, search string) []domain.CatalogItem {
	needle := strings.ToLower(search)
	out := []domain.CatalogItem{}
	for _, it := range s.items {
		if category != "" && category != domain.CategoryAll && it.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(it.Title), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Categories returns the "All" sentinel followed by each distinct category in
// first-seen order.
func (s *Store) Categories() []string {
	cats := []string{domain.CategoryAll}
	seen := map[string]bool{}
	for _, it := range s.items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		cats = append(cats, it.Category)
	}
	return cats
}

// Find looks an item up by id.
func (s *Store) Find(id string) (domain.CatalogItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.CatalogItem{}, false
}
