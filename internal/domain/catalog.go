package domain

// CategoryAll is the sentinel category that matches every catalog item.
const CategoryAll = "All"

// CatalogItem is a sellable dish. Items are loaded once and never mutated.
type CatalogItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Price        string `json:"price"` // currency literal, e.g. "18,50€"
	Category     string `json:"category"`
	CardImage    string `json:"cardImage"`
	DetailsImage string `json:"detailsImage"`
}

// ItemPayload is what the catalog view hands to the details view, and what
// the details view hands to the cart and favorites.
type ItemPayload struct {
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// Payload builds the details-view payload for the item.
func (c CatalogItem) Payload() ItemPayload {
	return ItemPayload{Title: c.Title, Price: c.Price, Image: c.DetailsImage}
}
