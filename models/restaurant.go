package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cuisine is the restaurant's cuisine label
type Cuisine string

const (
	CuisineItalian       Cuisine = "Italian"
	CuisineChinese       Cuisine = "Chinese"
	CuisineIndian        Cuisine = "Indian"
	CuisineMexican       Cuisine = "Mexican"
	CuisineAmerican      Cuisine = "American"
	CuisineFrench        Cuisine = "French"
	CuisineJapanese      Cuisine = "Japanese"
	CuisineMediterranean Cuisine = "Mediterranean"
	CuisineThai          Cuisine = "Thai"
	CuisineFusion        Cuisine = "Fusion"
)

// PriceRange is the restaurant's price tier
type PriceRange string

const (
	PriceLow    PriceRange = "Low"
	PriceMedium PriceRange = "Medium"
	PriceHigh   PriceRange = "High"
	PriceLuxury PriceRange = "Luxury"
)

// TableType is both a table's kind and a booking's seating preference
type TableType string

const (
	TableIndoor  TableType = "Indoor"
	TableOutdoor TableType = "Outdoor"
	TableBar     TableType = "Bar"
	TablePrivate TableType = "Private Room"
)

// Valid reports whether t is one of the known table types
func (t TableType) Valid() bool {
	switch t {
	case TableIndoor, TableOutdoor, TableBar, TablePrivate:
		return true
	}
	return false
}

// Restaurant is stored as one document: menu, tables, reviews and offers
// live in JSON columns next to the profile fields.
type Restaurant struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	OwnerID     string     `json:"ownerId,omitempty" gorm:"index"`
	Name        string     `json:"name" gorm:"not null" validate:"required"`
	Description string     `json:"description"`
	Cuisine     Cuisine    `json:"cuisine"`
	PriceRange  PriceRange `json:"priceRange"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	Address     string     `json:"address"`
	Image       string     `json:"image"`
	OpeningTime string     `json:"openingTime"`
	ClosingTime string     `json:"closingTime"`
	UpiID       string     `json:"upiId,omitempty"`
	QRCodeURL   string     `json:"qrCodeUrl,omitempty"`
	Offers      []Offer    `json:"offers" gorm:"serializer:json"`
	Menu        []MenuItem `json:"menu" gorm:"serializer:json"`
	Tables      []Table    `json:"tables" gorm:"serializer:json"`
	Reviews     []Review   `json:"reviews" gorm:"serializer:json"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Image       string  `json:"image" validate:"required"`
}

type Table struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Type        TableType `json:"type"`
	IsAvailable bool      `json:"isAvailable"`
}

type Review struct {
	ID      string  `json:"id"`
	User    string  `json:"user"`
	Rating  float64 `json:"rating" validate:"min=1,max=5"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

// MenuItem returns the menu entry with the given id
func (r *Restaurant) MenuItem(id string) (MenuItem, bool) {
	for _, m := range r.Menu {
		if m.ID == id {
			return m, true
		}
	}
	return MenuItem{}, false
}

// HasOffer reports whether label is one of the restaurant's offers
func (r *Restaurant) HasOffer(label string) bool {
	for _, o := range r.Offers {
		if o.Label == label {
			return true
		}
	}
	return false
}

// AddReview appends a review and recomputes the rating
func (r *Restaurant) AddReview(review Review) {
	r.Reviews = append(r.Reviews, review)
	r.RecomputeRating()
}

// RecomputeRating sets Rating to the mean review rating rounded to one
// decimal. A restaurant without reviews keeps its current rating.
func (r *Restaurant) RecomputeRating() {
	if len(r.Reviews) == 0 {
		return
	}
	sum := decimal.Zero
	for _, rv := range r.Reviews {
		sum = sum.Add(decimal.NewFromFloat(rv.Rating))
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(r.Reviews))))
	r.Rating = RoundHalfUp(mean, 1).InexactFloat64()
}

// RoundHalfUp rounds d to places decimals, ties toward positive infinity.
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(decimal.New(5, -1)).Floor().Shift(-places)
}
