package reservations

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"savorybook/fallback"
	"savorybook/gateway"
	"savorybook/models"
	"savorybook/pricing"
	"savorybook/statemachine"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

func goldenHarvest() models.Restaurant {
	r, _ := fallback.New().Restaurant("1")
	r.Offers = models.OffersFromLabels("FLAT 10% OFF", "20% OFF")
	return r
}

func newService(t *testing.T) (*Service, *MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)
	s := NewService(gw, WithClock(func() time.Time { return fixedNow }), WithPaymentDelay(0))
	return s, gw
}

func baseRequest() SubmitRequest {
	return SubmitRequest{
		RestaurantID:  "1",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9000000001",
		Date:          "2024-03-02",
		Time:          "19:30",
		Guests:        2,
		TableType:     models.TableIndoor,
		PaymentMethod: models.PaymentCash,
		Cart:          pricing.Cart{"m1": 2},
	}
}

func echoCreate(b models.Booking) (models.Booking, error) {
	b.ID = "bk-1"
	b.CreatedAt = fixedNow
	return b, nil
}

func TestSubmitFirstOrderWithCoupon(t *testing.T) {
	s, gw := newService(t)
	user := &models.User{ID: "u42", Email: "asha@example.com"}
	gw.EXPECT().GetRestaurant(gomock.Any(), "1").Return(goldenHarvest(), nil)
	gw.EXPECT().UserBookings(gomock.Any(), "asha@example.com").Return([]models.Booking{}, nil)
	gw.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Booking) (models.Booking, error) { return echoCreate(b) })

	req := baseRequest()
	req.User = user
	req.Coupon = "20% OFF"
	req.SpecialRequests = "Window seat"
	res, err := s.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	b := res.Booking
	if b.TotalAmount != 1275 || res.Quote.DiscountPercent != 25 {
		t.Fatalf("total = %v discount = %d, want 1275 and 25", b.TotalAmount, res.Quote.DiscountPercent)
	}
	if b.Status != models.StatusPending || b.IsPaid {
		t.Fatalf("cash booking = %s paid=%v", b.Status, b.IsPaid)
	}
	if b.UserID != "u42" || b.RestaurantName != "The Golden Harvest" {
		t.Fatalf("booking = %+v", b)
	}
	if b.SpecialRequests != "Window seat (Coupon: 20% OFF)" {
		t.Fatalf("specialRequests = %q", b.SpecialRequests)
	}
	if len(b.Items) != 1 || b.Items[0].Price != 850 || b.Items[0].Quantity != 2 {
		t.Fatalf("items = %+v", b.Items)
	}
}

func TestSubmitOnlinePaymentConfirms(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().GetRestaurant(gomock.Any(), "1").Return(goldenHarvest(), nil)
	gw.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Booking) (models.Booking, error) { return echoCreate(b) })

	req := baseRequest()
	req.PaymentMethod = models.PaymentUPI
	req.PayNow = true
	res, err := s.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Booking.Status != models.StatusConfirmed || !res.Booking.IsPaid {
		t.Fatalf("booking = %s paid=%v", res.Booking.Status, res.Booking.IsPaid)
	}
	// guest: no platform discount
	if res.Booking.TotalAmount != 1700 || res.Booking.UserID != GuestUserID {
		t.Fatalf("guest booking = %+v", res.Booking)
	}
}

func TestSubmitPaymentHonoursContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)
	s := NewService(gw, WithPaymentDelay(time.Hour))
	gw.EXPECT().GetRestaurant(gomock.Any(), "1").Return(goldenHarvest(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := baseRequest()
	req.PaymentMethod = models.PaymentCard
	req.PayNow = true
	if _, err := s.Submit(ctx, req); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSubmitValidationFailsBeforeAnyCall(t *testing.T) {
	s, _ := newService(t)
	req := baseRequest()
	req.CustomerEmail = "not-an-email"
	req.Guests = 0
	_, err := s.Submit(context.Background(), req)
	var verr models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if !strings.Contains(err.Error(), "customerEmail") || !strings.Contains(err.Error(), "guests") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestSubmitUnknownRestaurant(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().GetRestaurant(gomock.Any(), "1").Return(models.Restaurant{}, gateway.ErrUnavailable)
	if _, err := s.Submit(context.Background(), baseRequest()); !errors.Is(err, gateway.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestSubmitRejectsForeignCoupon(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().GetRestaurant(gomock.Any(), "1").Return(goldenHarvest(), nil)
	req := baseRequest()
	req.Coupon = "90% OFF"
	if _, err := s.Submit(context.Background(), req); !errors.Is(err, ErrUnknownCoupon) {
		t.Fatalf("err = %v, want ErrUnknownCoupon", err)
	}
}

func TestEligibility(t *testing.T) {
	s, gw := newService(t)
	user := &models.User{Email: "vikram@example.com"}
	gw.EXPECT().UserBookings(gomock.Any(), user.Email).Return([]models.Booking{{ID: "b1"}}, nil)
	if e := s.Eligibility(context.Background(), user); pricing.PlatformDiscount(e).Percent != 2 {
		t.Fatalf("returning diner eligibility = %+v", e)
	}
	gw.EXPECT().UserBookings(gomock.Any(), user.Email).Return(nil, errors.New("401"))
	if e := s.Eligibility(context.Background(), user); e.HistoryKnown || pricing.PlatformDiscount(e).Percent != 2 {
		t.Fatalf("unknown history eligibility = %+v", e)
	}
	if e := s.Eligibility(context.Background(), nil); e != pricing.Guest {
		t.Fatalf("guest eligibility = %+v", e)
	}
}

func TestMarkPaidCashBooking(t *testing.T) {
	s, gw := newService(t)
	b := models.Booking{ID: "b9", Status: models.StatusPending, PaymentMethod: models.PaymentCash}
	gw.EXPECT().UpdateBooking(gomock.Any(), "b9", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, u models.BookingUpdate) (models.Booking, error) {
			if u.IsPaid == nil || !*u.IsPaid || u.Status == nil || *u.Status != models.StatusConfirmed {
				t.Fatalf("update = %+v", u)
			}
			return models.Booking{ID: id, Status: *u.Status, IsPaid: true}, nil
		})
	got, err := s.MarkPaid(context.Background(), b)
	if err != nil || got.Status != models.StatusConfirmed || !got.IsPaid {
		t.Fatalf("MarkPaid = %+v, %v", got, err)
	}
}

func TestLifecycleGuardsSkipTheGateway(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	if _, err := s.MarkPaid(ctx, models.Booking{ID: "b1", Status: models.StatusCancelled}); !errors.Is(err, statemachine.ErrTerminalState) {
		t.Fatalf("MarkPaid cancelled = %v", err)
	}
	if _, err := s.Cancel(ctx, models.Booking{ID: "b1", Status: models.StatusCompleted}, statemachine.ActorCustomer); !errors.Is(err, statemachine.ErrTerminalState) {
		t.Fatalf("Cancel completed = %v", err)
	}
	if _, err := s.SetStatus(ctx, models.Booking{ID: "b1", Status: models.StatusPending}, models.StatusCompleted, statemachine.ActorCustomer); !errors.Is(err, statemachine.ErrInvalidTransition) {
		t.Fatalf("customer complete = %v", err)
	}
	b, err := s.SetStatus(ctx, models.Booking{ID: "b1", Status: models.StatusConfirmed}, models.StatusConfirmed, statemachine.ActorOwner)
	if err != nil || b.Status != models.StatusConfirmed {
		t.Fatalf("same status = %+v, %v", b, err)
	}
}

func TestCancelByCustomer(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().UpdateBooking(gomock.Any(), "b3", models.BookingUpdate{Status: ptr(models.StatusCancelled)}).
		Return(models.Booking{ID: "b3", Status: models.StatusCancelled}, nil)
	got, err := s.Cancel(context.Background(), models.Booking{ID: "b3", Status: models.StatusConfirmed}, statemachine.ActorCustomer)
	if err != nil || got.Status != models.StatusCancelled {
		t.Fatalf("Cancel = %+v, %v", got, err)
	}
}

func ptr[T any](v T) *T { return &v }

func TestOwnerDashboardOnboarding(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().RestaurantByOwner(gomock.Any(), "owner-1").Return(nil, nil)
	d, err := s.OwnerDashboard(context.Background(), "owner-1")
	if err != nil || !d.Onboarding() || d.View.Stats.Total != 0 {
		t.Fatalf("dashboard = %+v, %v", d, err)
	}
}

func TestOwnerDashboard(t *testing.T) {
	s, gw := newService(t)
	r := goldenHarvest()
	gw.EXPECT().RestaurantByOwner(gomock.Any(), "owner-1").Return(&r, nil)
	gw.EXPECT().RestaurantBookings(gomock.Any(), "1").Return([]models.Booking{
		{ID: "old", Status: models.StatusCompleted, TotalAmount: 2500, Guests: 2, CreatedAt: fixedNow.Add(-time.Hour)},
		{ID: "new", Status: models.StatusConfirmed, TotalAmount: 900, Guests: 3, CreatedAt: fixedNow.Add(-time.Minute)},
	}, nil)
	d, err := s.OwnerDashboard(context.Background(), "owner-1")
	if err != nil {
		t.Fatal(err)
	}
	if d.Onboarding() || d.View.Stats.Revenue != 2500 || d.View.Stats.Guests != 3 || d.View.NewCount != 1 {
		t.Fatalf("dashboard view = %+v", d.View)
	}
	if d.View.Bookings[0].ID != "new" {
		t.Fatalf("first row = %s, want newest", d.View.Bookings[0].ID)
	}
}

func TestSaveProfileDefaults(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().SaveRestaurant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Restaurant) (models.Restaurant, error) { return r, nil })
	r, err := s.SaveProfile(context.Background(), models.User{ID: "owner-1"}, models.Restaurant{})
	if err != nil {
		t.Fatal(err)
	}
	if r.OwnerID != "owner-1" || r.Name != "New Restaurant" || r.Cuisine != models.CuisineIndian ||
		r.PriceRange != models.PriceMedium || r.OpeningTime != "09:00" || r.ClosingTime != "22:00" || r.Rating != 5 {
		t.Fatalf("profile = %+v", r)
	}
}

func TestSaveProfileKeepsReviewedRating(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().SaveRestaurant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Restaurant) (models.Restaurant, error) { return r, nil })
	r, err := s.SaveProfile(context.Background(), models.User{ID: "owner-1"},
		models.Restaurant{Name: "Chaat Corner", Reviews: []models.Review{{Rating: 3}}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Rating == 5 {
		t.Fatal("reviewed restaurant got the new-profile rating")
	}
}

func TestMenuEditing(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().SaveRestaurant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Restaurant) (models.Restaurant, error) { return r, nil }).Times(2)

	r := goldenHarvest()
	if _, err := s.AddMenuItem(context.Background(), r, models.MenuItem{Name: "Tiramisu"}); err == nil {
		t.Fatal("menu item without price and image accepted")
	}
	added, err := s.AddMenuItem(context.Background(), r, models.MenuItem{Name: "Tiramisu", Price: 400, Image: "https://img/t.jpg"})
	if err != nil || len(added.Menu) != 3 || !strings.HasPrefix(added.Menu[2].ID, "m_") || added.Menu[2].Category != "Main" {
		t.Fatalf("AddMenuItem = %+v, %v", added.Menu, err)
	}
	if len(r.Menu) != 2 {
		t.Fatal("caller's menu was modified")
	}
	removed, err := s.RemoveMenuItem(context.Background(), added, "m1")
	if err != nil || len(removed.Menu) != 2 || removed.Menu[0].ID != "m2" {
		t.Fatalf("RemoveMenuItem = %+v, %v", removed.Menu, err)
	}
}

func TestAddReview(t *testing.T) {
	s, gw := newService(t)
	gw.EXPECT().AddReview(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, rv models.Review) (models.Restaurant, error) {
			if rv.ID == "" || rv.Date != "2024-03-01" {
				t.Fatalf("review = %+v", rv)
			}
			r := goldenHarvest()
			r.AddReview(rv)
			return r, nil
		})
	r, err := s.AddReview(context.Background(), "1", models.Review{User: "Asha", Rating: 5})
	if err != nil || r.Rating != 4.7 {
		t.Fatalf("AddReview = %v, %v", r.Rating, err)
	}
	if _, err := s.AddReview(context.Background(), "1", models.Review{Rating: 9}); err == nil {
		t.Fatal("rating 9 accepted")
	}
}

// The service runs end to end against the real gateway with the backend down
func TestSubmitOffline(t *testing.T) {
	gw := gateway.New(gateway.NewClient("http://127.0.0.1:1", time.Second), fallback.New())
	s := NewService(gw, WithPaymentDelay(0), WithClock(func() time.Time { return fixedNow }))
	req := baseRequest()
	req.User = &models.User{ID: "u1", Email: "vikram@example.com"}
	req.CustomerEmail = "vikram@example.com"
	req.Cart = pricing.Cart{"m2": 1}
	req.Coupon = "FLAT 10% OFF"
	res, err := s.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	// returning diner: 2% + 10% of 350 = 308
	if res.Booking.TotalAmount != 308 || !strings.HasPrefix(res.Booking.ID, "mock_b_") {
		t.Fatalf("offline booking = %+v", res.Booking)
	}
	paid, err := s.MarkPaid(context.Background(), res.Booking)
	if err != nil || paid.Status != models.StatusConfirmed || !paid.IsPaid {
		t.Fatalf("MarkPaid offline = %+v, %v", paid, err)
	}
}
