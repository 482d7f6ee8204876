package app

import (
	"fmt"

	"bistro/internal/domain"
)

// ============================================================
// Catalog
// ============================================================

func (a *App) ListCatalog() []domain.CatalogItem {
	return a.svc.Catalog.List()
}

func (a *App) FilterCatalog(category, search string) []domain.CatalogItem {
	return a.svc.Catalog.Filter(category, search)
}

func (a *App) ListCategories() []string {
	return a.svc.Catalog.Categories()
}

// GetHome returns the filtered menu plus the badge counts.
func (a *App) GetHome(category, search string) HomeView {
	return HomeView{
		Categories:    a.svc.Catalog.Categories(),
		Items:         a.svc.Catalog.Filter(category, search),
		CartCount:     a.svc.Cart.Count(),
		FavoriteCount: a.svc.Favorites.Count(),
	}
}

// GetItemDetails returns the details screen for a catalog item.
func (a *App) GetItemDetails(id string) (*ItemDetailsView, error) {
	item, ok := a.svc.Catalog.Find(id)
	if !ok {
		return nil, fmt.Errorf("catalog item %s not found", id)
	}
	return &ItemDetailsView{
		Item:            item,
		Payload:         item.Payload(),
		Favorite:        a.svc.Favorites.IsFavorite(item.Title),
		InCart:          a.svc.Cart.Contains(item.Title),
		DefaultQuantity: defaultDetailsQuantity,
	}, nil
}
