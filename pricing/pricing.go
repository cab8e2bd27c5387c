// Package pricing computes what a diner pays for a food order bundled with
// a reservation. Everything here is pure: no clocks, no I/O.
package pricing

import (
	"savorybook/models"

	"github.com/shopspring/decimal"
)

// Cart maps a menu item id to the ordered quantity
type Cart map[string]int

// DiscountKind tells where a discount comes from
type DiscountKind string

const (
	KindNone     DiscountKind = ""
	KindFirst    DiscountKind = "first"
	KindSeasonal DiscountKind = "seasonal"
	KindCoupon   DiscountKind = "coupon"
)

const (
	FirstOrderPercent = 5
	SeasonalPercent   = 2
)

type Discount struct {
	Kind    DiscountKind `json:"kind"`
	Percent int          `json:"percent"`
	Label   string       `json:"label"`
}

// Eligibility is what the platform knows about the diner's history.
// HistoryKnown is false when the booking history could not be loaded.
type Eligibility struct {
	Authenticated bool
	PriorBookings int
	HistoryKnown  bool
}

// Guest is the eligibility of a diner who is not signed in
var Guest = Eligibility{}

// FirstTimer is a signed-in diner with no bookings yet
func FirstTimer() Eligibility {
	return Eligibility{Authenticated: true, HistoryKnown: true}
}

// Returning is a signed-in diner with n earlier bookings
func Returning(n int) Eligibility {
	return Eligibility{Authenticated: true, PriorBookings: n, HistoryKnown: true}
}

// Quote is the priced cart
type Quote struct {
	Subtotal        float64  `json:"subtotal"`
	Platform        Discount `json:"platformDiscount"`
	Coupon          Discount `json:"couponDiscount"`
	DiscountPercent int      `json:"discountPercent"`
	FinalTotal      float64  `json:"finalTotal"`
}

// PlatformDiscount is the loyalty discount: 5% on a first booking, 2%
// afterwards or when the history is unknown, nothing for guests.
func PlatformDiscount(e Eligibility) Discount {
	switch {
	case !e.Authenticated:
		return Discount{}
	case e.HistoryKnown && e.PriorBookings == 0:
		return Discount{Kind: KindFirst, Percent: FirstOrderPercent, Label: "First Order 5% OFF"}
	default:
		return Discount{Kind: KindSeasonal, Percent: SeasonalPercent, Label: "Seasonal Offer 2% OFF"}
	}
}

// CouponDiscount is the percent embedded in a restaurant offer label
func CouponDiscount(label string) Discount {
	if label == "" {
		return Discount{}
	}
	return Discount{Kind: KindCoupon, Percent: models.ParseOfferPercent(label), Label: label}
}

// Subtotal sums price x quantity over cart lines found in the menu.
// Unknown ids and non-positive quantities are skipped.
func Subtotal(cart Cart, menu []models.MenuItem) float64 {
	return subtotal(cart, menu).InexactFloat64()
}

func subtotal(cart Cart, menu []models.MenuItem) decimal.Decimal {
	prices := menuPrices(menu)
	total := decimal.Zero
	for id, qty := range cart {
		price, ok := prices[id]
		if !ok || qty < 1 {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// menuPrices indexes the first menu entry for each id
func menuPrices(menu []models.MenuItem) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(menu))
	for _, item := range menu {
		if _, seen := prices[item.ID]; !seen {
			prices[item.ID] = decimal.NewFromFloat(item.Price)
		}
	}
	return prices
}

// FinalTotal applies percent to subtotal and rounds half up to a whole
// currency unit. The percent is not clamped.
func FinalTotal(subtotal float64, percent int) float64 {
	return discounted(decimal.NewFromFloat(subtotal), percent).InexactFloat64()
}

// LinePrice is the discounted display price of one menu line. It is
// rounded per line, not derived from the cart total.
func LinePrice(price float64, percent int) float64 {
	return discounted(decimal.NewFromFloat(price), percent).InexactFloat64()
}

func discounted(amount decimal.Decimal, percent int) decimal.Decimal {
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return models.RoundHalfUp(amount.Mul(factor), 0)
}

// Compute prices a cart. The platform and coupon discounts stack
// additively. An empty order costs 0 and shows no discount.
func Compute(cart Cart, menu []models.MenuItem, e Eligibility, coupon string) Quote {
	sub := subtotal(cart, menu)
	if sub.IsZero() {
		return Quote{}
	}
	q := Quote{
		Subtotal: sub.InexactFloat64(),
		Platform: PlatformDiscount(e),
		Coupon:   CouponDiscount(coupon),
	}
	q.DiscountPercent = q.Platform.Percent + q.Coupon.Percent
	q.FinalTotal = discounted(sub, q.DiscountPercent).InexactFloat64()
	return q
}

// OrderItems snapshots the cart into order lines, in menu order
func OrderItems(cart Cart, menu []models.MenuItem) []models.OrderItem {
	var items []models.OrderItem
	seen := make(map[string]bool, len(cart))
	for _, item := range menu {
		qty := cart[item.ID]
		if qty < 1 || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, models.OrderItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
		})
	}
	return items
}
