package domain

// FavoriteItem is a favorited dish, keyed by Title.
type FavoriteItem struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}
