package pricing

import (
	"testing"
	"testing/quick"

	"savorybook/models"
)

var goldenHarvestMenu = []models.MenuItem{
	{ID: "m1", Name: "Truffle Pasta", Price: 850, Category: "Main"},
	{ID: "m2", Name: "Bruschetta", Price: 350, Category: "Starter"},
}

func TestComputeFirstOrderWithCoupon(t *testing.T) {
	q := Compute(Cart{"m1": 2}, goldenHarvestMenu, FirstTimer(), "20% OFF")
	if q.Subtotal != 1700 {
		t.Errorf("subtotal = %v, want 1700", q.Subtotal)
	}
	if q.DiscountPercent != 25 {
		t.Errorf("discountPercent = %d, want 25", q.DiscountPercent)
	}
	if q.FinalTotal != 1275 {
		t.Errorf("finalTotal = %v, want 1275", q.FinalTotal)
	}
	if q.Platform.Kind != KindFirst || q.Coupon.Percent != 20 {
		t.Errorf("discounts = %+v / %+v", q.Platform, q.Coupon)
	}
}

func TestComputeEmptyCart(t *testing.T) {
	eligibilities := []Eligibility{Guest, FirstTimer(), Returning(3), {Authenticated: true}}
	carts := []Cart{nil, {}, {"missing": 4}, {"m1": 0}}
	for _, e := range eligibilities {
		for _, c := range carts {
			q := Compute(c, goldenHarvestMenu, e, "20% OFF")
			if q.FinalTotal != 0 || q.DiscountPercent != 0 {
				t.Fatalf("Compute(%v, %+v) = %+v, want zero quote", c, e, q)
			}
		}
	}
}

func TestSubtotalIgnoresUnknownItems(t *testing.T) {
	got := Subtotal(Cart{"m1": 1, "m2": 2, "ghost": 9}, goldenHarvestMenu)
	if got != 1550 {
		t.Fatalf("subtotal = %v, want 1550", got)
	}
}

func TestPlatformDiscount(t *testing.T) {
	tests := []struct {
		name string
		e    Eligibility
		want int
		kind DiscountKind
	}{
		{"guest", Guest, 0, KindNone},
		{"first booking", FirstTimer(), 5, KindFirst},
		{"returning", Returning(1), 2, KindSeasonal},
		{"history unavailable", Eligibility{Authenticated: true}, 2, KindSeasonal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := PlatformDiscount(tt.e)
			if d.Percent != tt.want || d.Kind != tt.kind {
				t.Fatalf("PlatformDiscount = %+v, want %d%% %q", d, tt.want, tt.kind)
			}
		})
	}
}

func TestCouponDiscountUnparsable(t *testing.T) {
	if d := CouponDiscount("FREE DRINK"); d.Percent != 0 {
		t.Fatalf("percent = %d, want 0", d.Percent)
	}
	q := Compute(Cart{"m2": 1}, goldenHarvestMenu, Returning(2), "FREE DRINK")
	if q.DiscountPercent != 2 || q.FinalTotal != 343 {
		t.Fatalf("quote = %+v, want 2%% and 343", q)
	}
}

func TestStackingIsNotClamped(t *testing.T) {
	q := Compute(Cart{"m2": 1}, goldenHarvestMenu, FirstTimer(), "100% OFF")
	if q.DiscountPercent != 105 {
		t.Fatalf("discountPercent = %d, want 105", q.DiscountPercent)
	}
	// 350 * -0.05 = -17.5, half up gives -17
	if q.FinalTotal != -17 {
		t.Fatalf("finalTotal = %v, want -17", q.FinalTotal)
	}
}

func TestLinePriceRoundsPerLine(t *testing.T) {
	tests := []struct {
		price   float64
		percent int
		want    float64
	}{
		{350, 25, 263}, // 262.5 rounds up
		{850, 25, 638}, // 637.5
		{120, 7, 112},  // 111.6
		{550, 0, 550},
	}
	for _, tt := range tests {
		if got := LinePrice(tt.price, tt.percent); got != tt.want {
			t.Errorf("LinePrice(%v, %d) = %v, want %v", tt.price, tt.percent, got, tt.want)
		}
	}
}

func TestOrderItemsSnapshot(t *testing.T) {
	items := OrderItems(Cart{"m2": 3, "m1": 1, "ghost": 1}, goldenHarvestMenu)
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if items[0].ItemID != "m1" || items[0].Price != 850 || items[0].Name != "Truffle Pasta" {
		t.Errorf("first line = %+v", items[0])
	}
	if items[1].ItemID != "m2" || items[1].Quantity != 3 {
		t.Errorf("second line = %+v", items[1])
	}
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func TestFinalTotalAdditivity(t *testing.T) {
	prop := func(s uint32, a, b uint8) bool {
		subtotal := int64(s % 1_000_000)
		p1, p2 := int64(a%101), int64(b%101)
		want := floorDiv(subtotal*(100-p1-p2)+50, 100)
		return FinalTotal(float64(subtotal), int(p1+p2)) == float64(want)
	}
	if err := quick.Check(prop, &quick.Config{MaxCount: 2000}); err != nil {
		t.Fatal(err)
	}
}
