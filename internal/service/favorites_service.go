package service

import (
	"context"
	"sync"

	"bistro/internal/domain"
)

// FavoritesService owns the set of favorited dishes, keyed by title.
type FavoritesService struct {
	mu      sync.Mutex
	items   []domain.FavoriteItem
	emitter EventEmitter
}

func NewFavoritesService(emitter EventEmitter) *FavoritesService {
	return &FavoritesService{emitter: emitter}
}

// ToggleFavorite removes the title if present, otherwise adds the item.
// It returns the membership after the flip.
func (s *FavoritesService) ToggleFavorite(ctx context.Context, item domain.FavoriteItem) bool {
	s.mu.Lock()
	favorite := true
	if i := s.indexOf(item.Title); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		favorite = false
	} else {
		s.items = append(s.items, item)
	}
	items := append([]domain.FavoriteItem{}, s.items...)
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventFavoritesChanged, items)
	return favorite
}

func (s *FavoritesService) IsFavorite(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(title) >= 0
}

// List returns the favorites in the order they were added.
func (s *FavoritesService) List() []domain.FavoriteItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.FavoriteItem{}, s.items...)
}

func (s *FavoritesService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *FavoritesService) indexOf(title string) int {
	for i, f := range s.items {
		if f.Title == title {
			return i
		}
	}
	return -1
}
