package app

import "bistro/internal/domain"

// ============================================================
// Favorites
// ============================================================

// ToggleFavorite flips the item and returns whether it is now a favorite.
func (a *App) ToggleFavorite(item domain.FavoriteItem) bool {
	return a.svc.Favorites.ToggleFavorite(a.ctx, item)
}

func (a *App) IsFavorite(title string) bool {
	return a.svc.Favorites.IsFavorite(title)
}

func (a *App) ListFavorites() []domain.FavoriteItem {
	return a.svc.Favorites.List()
}
