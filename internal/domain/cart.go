package domain

// CartLine is one distinct dish in the cart. Title is the identity key.
type CartLine struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// CartSnapshot is the full cart state returned to the frontend after every
// mutation.
type CartSnapshot struct {
	Lines          []CartLine `json:"lines"`
	Count          int        `json:"count"`
	Total          float64    `json:"total"`
	FormattedTotal string     `json:"formattedTotal"`
}
