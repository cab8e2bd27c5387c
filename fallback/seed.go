package fallback

import (
	"time"

	"savorybook/models"
)

const img = "?q=80&w=800&auto=format&fit=crop"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + img
}

// DemoUser is the customer known to the offline dataset
func DemoUser() models.User {
	return models.User{
		ID:        "u1",
		Name:      "Vikram Singh",
		Email:     "vikram@example.com",
		Phone:     "+91 98765 43210",
		Role:      models.RoleCustomer,
		Favorites: []string{"1"},
	}
}

// DemoBookings returns the bookings of the offline dataset
func DemoBookings() []models.Booking {
	return []models.Booking{{
		ID:             "b1",
		RestaurantID:   "1",
		RestaurantName: "The Golden Harvest",
		UserID:         "u1",
		CustomerName:   "Vikram Singh",
		CustomerEmail:  "vikram@example.com",
		CustomerPhone:  "9876543210",
		Date:           "2023-11-15",
		Time:           "19:00",
		Guests:         2,
		TableType:      models.TableIndoor,
		Status:         models.StatusCompleted,
		PaymentMethod:  models.PaymentCard,
		TotalAmount:    2500,
		IsPaid:         true,
		CreatedAt:      time.Date(2023, 11, 10, 10, 0, 0, 0, time.UTC),
	}}
}

// SeedRestaurants returns a fresh copy of the demo catalog. The backend
// seeds its database from the same list.
func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:          "1",
			Name:        "The Golden Harvest",
			Cuisine:     models.CuisineItalian,
			Description: "Authentic rustic Italian cuisine with a focus on farm-to-table ingredients. Famous for our truffle pasta and wood-fired pizzas.",
			PriceRange:  models.PriceHigh,
			Rating:      4.8,
			Address:     "123 Olive Grove, Mumbai",
			Image:       unsplash("photo-1517248135467-4c7edcad34c4"),
			OpeningTime: "11:00",
			ClosingTime: "23:00",
			Offers:      models.OffersFromLabels("FLAT 10% OFF"),
			Tables: []models.Table{
				{ID: "t1", Name: "Table 1", Capacity: 2, Type: models.TableIndoor, IsAvailable: true},
				{ID: "t2", Name: "Table 2", Capacity: 4, Type: models.TableIndoor, IsAvailable: true},
			},
			Menu: []models.MenuItem{
				{ID: "m1", Name: "Truffle Pasta", Price: 850, Description: "Fresh tagliatelle with black truffle", Category: "Main", Image: unsplash("photo-1473093295043-cdd812d0e601")},
				{ID: "m2", Name: "Bruschetta", Price: 350, Description: "Tomatoes, basil, garlic", Category: "Starter", Image: unsplash("photo-1572695157363-bc31c9602289")},
			},
			Reviews: []models.Review{
				{ID: "r1", User: "Rahul K.", Rating: 5, Comment: "Amazing food! Best pasta in Mumbai.", Date: "2023-10-01"},
				{ID: "r1b", User: "Sarah J.", Rating: 4, Comment: "Great ambiance, slightly pricey.", Date: "2023-10-05"},
			},
		},
		{
			ID:          "2",
			Name:        "Spice Route",
			Cuisine:     models.CuisineIndian,
			Description: "A culinary journey through the spices of India. Experience the heat and flavor of authentic curries.",
			PriceRange:  models.PriceMedium,
			Rating:      4.5,
			Address:     "45 Curry Lane, Delhi",
			Image:       unsplash("photo-1585937421612-70a008356f36"),
			OpeningTime: "12:00",
			ClosingTime: "23:00",
			Offers:      models.OffersFromLabels("15% OFF"),
			Tables: []models.Table{
				{ID: "t5", Name: "Table A", Capacity: 6, Type: models.TableIndoor, IsAvailable: true},
			},
			Menu: []models.MenuItem{
				{ID: "m3", Name: "Butter Chicken", Price: 550, Description: "Rich tomato gravy", Category: "Main", Image: unsplash("photo-1603894584373-5ac82b2ae398")},
				{ID: "m4", Name: "Garlic Naan", Price: 120, Description: "Buttery bread", Category: "Side", Image: unsplash("photo-1626074353765-517a681e40be")},
			},
			Reviews: []models.Review{
				{ID: "r2", User: "Amit S.", Rating: 5, Comment: "Authentic taste.", Date: "2023-09-12"},
			},
		},
		{
			ID:          "3",
			Name:        "Sakura Gardens",
			Cuisine:     models.CuisineJapanese,
			Description: "Tranquil Japanese dining with a beautiful koi pond. Offering Omakase and fresh sashimi.",
			PriceRange:  models.PriceLuxury,
			Rating:      4.9,
			Address:     "88 Cherry Blossom Way, Bangalore",
			Image:       unsplash("photo-1579027989536-b7b1f875659b"),
			OpeningTime: "17:00",
			ClosingTime: "23:00",
			Offers:      models.OffersFromLabels("10% OFF"),
			Tables: []models.Table{
				{ID: "t7", Name: "Counter", Capacity: 2, Type: models.TableBar, IsAvailable: true},
			},
			Menu: []models.MenuItem{},
			Reviews: []models.Review{
				{ID: "r3", User: "Kenji", Rating: 5, Comment: "Freshest Sushi!", Date: "2023-11-01"},
			},
		},
		plain("4", "El Camino", models.CuisineMexican, models.PriceLow, 4.3,
			"Vibrant street-style tacos and crafted margaritas. Lively atmosphere perfect for groups.",
			"22 Fiesta Blvd, Goa", "photo-1565299585323-38d6b0865b47", "11:00", "01:00", "FREE DRINK"),
		plain("5", "Le Petit Bistro", models.CuisineFrench, models.PriceMedium, 4.6,
			"Cozy french bistro with classic dishes and a curated wine list.",
			"10 Rue de Paris, Pondicherry", "photo-1550966871-3ed3c47e2ce2", "08:00", "22:00", "5% OFF"),
		{
			ID:          "6",
			Name:        "Dragon Palace",
			Cuisine:     models.CuisineChinese,
			Description: "Traditional Dim Sum and spicy Schezwan dishes in an elegant setting.",
			PriceRange:  models.PriceMedium,
			Rating:      4.4,
			Address:     "88 Dragon St, Kolkata",
			Image:       unsplash("photo-1525164286253-04e68b9d94c6"),
			OpeningTime: "11:00",
			ClosingTime: "23:00",
			Offers:      models.OffersFromLabels("10% OFF"),
			Tables:      []models.Table{},
			Menu: []models.MenuItem{
				{ID: "m5", Name: "Dim Sum Basket", Price: 450, Description: "Mixed dumplings", Category: "Starter", Image: unsplash("photo-1496116218417-1a781b1c423c")},
			},
			Reviews: []models.Review{
				{ID: "r6", User: "Priya", Rating: 4, Comment: "Good food, slow service.", Date: "2023-10-10"},
			},
		},
		plain("7", "Tandoori Nights", models.CuisineIndian, models.PriceMedium, 4.7,
			"Open air rooftop restaurant serving the best kebabs in town.",
			"Rooftop 4, Hyderabad", "photo-1514362545857-3bc165497db5", "18:00", "01:00", "20% OFF"),
		plain("8", "Burger Joint", models.CuisineAmerican, models.PriceLow, 4.2,
			"Gourmet burgers and hand-spun milkshakes.",
			"Sector 29, Gurgaon", "photo-1551782450-a2132b4ba21d", "11:00", "23:00", "COMBO OFFER"),
		plain("9", "Olive & Oregano", models.CuisineMediterranean, models.PriceHigh, 4.6,
			"Fresh hummus, falafel, and grilled meats.",
			"Jubilee Hills, Hyderabad", "photo-1544124499-58912cbddad9", "12:00", "23:00", "10% OFF"),
		plain("10", "Bangkok Street", models.CuisineThai, models.PriceMedium, 4.5,
			"Spicy, sour, sweet and salty flavors of Thailand.",
			"Indiranagar, Bangalore", "photo-1559339352-11d035aa65de", "12:00", "23:00", "15% OFF"),
	}
}

// plain builds a catalog entry with one offer and no menu, tables or reviews
func plain(id, name string, cuisine models.Cuisine, price models.PriceRange, rating float64,
	desc, address, photo, opening, closing, offer string) models.Restaurant {
	return models.Restaurant{
		ID:          id,
		Name:        name,
		Cuisine:     cuisine,
		Description: desc,
		PriceRange:  price,
		Rating:      rating,
		Address:     address,
		Image:       unsplash(photo),
		OpeningTime: opening,
		ClosingTime: closing,
		Offers:      models.OffersFromLabels(offer),
		Tables:      []models.Table{},
		Menu:        []models.MenuItem{},
		Reviews:     []models.Review{},
	}
}
