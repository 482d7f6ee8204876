package app

import "bistro/internal/domain"

// defaultDetailsQuantity is where the details screen's stepper starts.
const defaultDetailsQuantity = 2

// HomeView is everything the home screen renders in one call.
type HomeView struct {
	Categories    []string             `json:"categories"`
	Items         []domain.CatalogItem `json:"items"`
	CartCount     int                  `json:"cartCount"`
	FavoriteCount int                  `json:"favoriteCount"`
}

// ItemDetailsView is the details screen for one dish.
type ItemDetailsView struct {
	Item            domain.CatalogItem `json:"item"`
	Payload         domain.ItemPayload `json:"payload"`
	Favorite        bool               `json:"favorite"`
	InCart          bool               `json:"inCart"`
	DefaultQuantity int                `json:"defaultQuantity"`
}
