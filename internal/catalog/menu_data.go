package catalog

import "tableside/internal/models"

// Default returns the restaurant's menu as configured at deploy time.
func Default() *Catalog {
	return New([]models.MenuSection{
		{
			ID:    "burgers",
			Title: "Burgers",
			Type:  models.SectionFood,
			Items: []models.MenuItem{
				{
					ID:          "burger-1",
					Name:        "Signature Burger",
					Description: "House-made beef patty with special sauce, lettuce, cheese, pickles, and onions",
					Price:       12.99,
					Image:       "/burger.jpg",
				},
				{
					ID:          "burger-2",
					Name:        "Cheeseburger",
					Description: "Classic beef patty with American cheese, lettuce, tomato, and mayo",
					Price:       10.99,
				},
				{
					ID:          "burger-3",
					Name:        "Veggie Burger",
					Description: "Plant-based patty with avocado, sprouts, tomato, and vegan aioli",
					Price:       11.99,
				},
			},
		},
		{
			ID:    "sides",
			Title: "Sides",
			Type:  models.SectionFood,
			Items: []models.MenuItem{
				{
					ID:          "sides-1",
					Name:        "French Fries",
					Description: "Crispy golden fries with sea salt",
					Price:       4.99,
				},
				{
					ID:          "sides-2",
					Name:        "Onion Rings",
					Description: "Beer-battered onion rings with dipping sauce",
					Price:       5.99,
				},
				{
					ID:          "sides-3",
					Name:        "Side Salad",
					Description: "Mixed greens with cherry tomatoes and house dressing",
					Price:       4.99,
				},
			},
		},
		{
			ID:    "drinks",
			Title: "Beverages",
			Type:  models.SectionDrinks,
			Items: []models.MenuItem{
				{
					ID:          "drink-1",
					Name:        "Soft Drink",
					Description: "Cola, lemon-lime, or root beer",
					Price:       2.99,
				},
				{
					ID:          "drink-2",
					Name:        "Iced Tea",
					Description: "Freshly brewed and sweetened or unsweetened",
					Price:       2.99,
				},
				{
					ID:          "drink-3",
					Name:        "Craft Beer",
					Description: "Rotating selection of local craft beers",
					Price:       6.99,
				},
			},
		},
	})
}
