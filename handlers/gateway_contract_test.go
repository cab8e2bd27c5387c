package handlers_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"savorybook/fallback"
	"savorybook/gateway"
	"savorybook/models"
	"savorybook/pricing"
	"savorybook/reservations"
	"savorybook/statemachine"
)

// The gateway and the backend agree on the wire: every answer below must
// come from the server, never from the offline data.
func TestGatewayAgainstBackend(t *testing.T) {
	r, _ := setup(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	var mu sync.Mutex
	sources := map[string]gateway.Source{}
	gw := gateway.New(gateway.NewClient(srv.URL+"/api", 2*time.Second), fallback.NewEmpty(),
		gateway.WithSourceHook(func(op string, src gateway.Source) {
			mu.Lock()
			sources[op] = src
			mu.Unlock()
		}))
	svc := reservations.NewService(gw, reservations.WithPaymentDelay(0))
	ctx := context.Background()

	user := models.User{Name: "Meera", Email: "meera@example.com", Password: "pw123456", Role: models.RoleCustomer}
	if _, err := gw.Register(ctx, user); err != nil {
		t.Fatal(err)
	}
	if _, err := gw.Register(ctx, user); !errors.Is(err, gateway.ErrEmailTaken) {
		t.Fatalf("second register = %v", err)
	}
	if _, err := gw.Login(ctx, user.Email, "wrong", models.RoleCustomer); !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Fatalf("bad login = %v", err)
	}
	me, err := gw.Login(ctx, user.Email, user.Password, models.RoleCustomer)
	if err != nil || gw.Client().Token() == "" {
		t.Fatalf("login = %+v, %v (token %q)", me, err, gw.Client().Token())
	}

	if _, err := gw.GetRestaurant(ctx, "nope"); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("unknown restaurant = %v", err)
	}
	if owned, err := gw.RestaurantByOwner(ctx, "nobody"); owned != nil || err != nil {
		t.Fatalf("owner without restaurant = %v, %v", owned, err)
	}

	res, err := svc.Submit(ctx, reservations.SubmitRequest{
		RestaurantID:  "1",
		User:          &me,
		CustomerName:  me.Name,
		CustomerEmail: me.Email,
		CustomerPhone: "9000000001",
		Date:          "2026-10-21",
		Time:          "20:00",
		Guests:        3,
		PaymentMethod: models.PaymentCash,
		Cart:          pricing.Cart{"m1": 1, "m2": 2},
		Coupon:        "FLAT 10% OFF",
	})
	if err != nil {
		t.Fatal(err)
	}
	b := res.Booking
	if b.ID == "" || b.Status != models.StatusPending || b.TotalAmount != res.Quote.FinalTotal || len(b.Items) != 2 {
		t.Fatalf("submitted = %+v", b)
	}
	if b.UserID != me.ID {
		t.Fatalf("user id = %q, want %q", b.UserID, me.ID)
	}

	paid, err := svc.MarkPaid(ctx, b)
	if err != nil || paid.Status != models.StatusConfirmed || !paid.IsPaid {
		t.Fatalf("mark paid = %+v, %v", paid, err)
	}
	// customers cannot complete their own booking; the backend says so too
	if _, err := gw.UpdateBooking(ctx, b.ID, models.BookingUpdate{Status: ptr(models.StatusCompleted)}); err == nil {
		t.Fatal("customer completed a booking")
	}
	cancelled, err := svc.Cancel(ctx, paid, statemachine.ActorCustomer)
	if err != nil || cancelled.Status != models.StatusCancelled {
		t.Fatalf("cancel = %+v, %v", cancelled, err)
	}

	mine, err := gw.UserBookings(ctx, me.Email)
	if err != nil || len(mine) != 1 || mine[0].Status != models.StatusCancelled {
		t.Fatalf("bookings = %+v, %v", mine, err)
	}

	mu.Lock()
	defer mu.Unlock()
	for op, src := range sources {
		if src != gateway.SourceRemote {
			t.Errorf("%s came from %s", op, src)
		}
	}
}

func ptr[T any](v T) *T { return &v }
