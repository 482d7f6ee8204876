package catalog

import "bistro/internal/domain"

var defaultItems = []domain.CatalogItem{
	{
		ID:           "1",
		Title:        "Boeuf Bourguignon",
		Price:        "18,50€",
		Category:     "Main",
		CardImage:    "assets/boeuf-bourguignon.jpeg",
		DetailsImage: "assets/details-1.png",
	},
	{
		ID:           "2",
		Title:        "Coq au Vin",
		Price:        "17,00€",
		Category:     "Main",
		CardImage:    "assets/coq-au-vin.jpg",
		DetailsImage: "assets/details-3.png",
	},
	{
		ID:           "3",
		Title:        "Ratatouille",
		Price:        "14,50€",
		Category:     "Veg",
		CardImage:    "assets/ratatouille.jpg",
		DetailsImage: "assets/details-2.png",
	},
	{
		ID:           "4",
		Title:        "Croque Monsieur",
		Price:        "11,00€",
		Category:     "Snack",
		CardImage:    "assets/croque-monsieur.png",
		DetailsImage: "assets/details-4.png",
	},
}
