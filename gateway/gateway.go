// Package gateway reads and writes restaurants, bookings and accounts
// through the backend, and answers from the offline dataset whenever the
// backend fails. Callers get the same types from either source; only an
// explicit not-found, a deliberate rejection (see final) or an entity
// unknown to both sources comes back as an error.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"savorybook/fallback"
	"savorybook/logger"
	"savorybook/models"
)

// Source tells where a result came from
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

type Gateway struct {
	client *Client
	store  *fallback.Store
	log    *logger.Logger
	hook   func(op string, src Source)
}

type Option func(*Gateway)

// WithSourceHook reports the source of every successful result
func WithSourceHook(h func(op string, src Source)) Option {
	return func(g *Gateway) { g.hook = h }
}

func WithLogger(l *logger.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func New(client *Client, store *fallback.Store, opts ...Option) *Gateway {
	g := &Gateway{client: client, store: store, log: logger.Discard()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Client exposes the underlying REST client, e.g. to read the session token
func (g *Gateway) Client() *Client { return g.client }

func (g *Gateway) remote(op string) {
	if g.hook != nil {
		g.hook(op, SourceRemote)
	}
}

// degraded reports whether the offline data should answer instead. That
// is every failure except an explicit 404 and the rejections listed in
// final. If so it logs the cause and records the source.
func (g *Gateway) degraded(ctx context.Context, op string, err error) bool {
	var te *TransportError
	var re *RemoteError
	switch {
	case errors.As(err, &te):
	case errors.As(err, &re) && !errors.Is(re, ErrNotFound) && !final(op, re):
	default:
		return false
	}
	g.log.Warn(ctx, op, "backend unavailable, using offline data", slog.String("cause", err.Error()))
	if g.hook != nil {
		g.hook(op, SourceFallback)
	}
	return true
}

// final lists the 4xx answers a reachable backend gives on purpose and the
// offline data must not paper over: wrong credentials, a taken email, and
// a booking change the backend refused.
func final(op string, re *RemoteError) bool {
	switch op {
	case "login":
		return re.Status == http.StatusUnauthorized
	case "register":
		return isDuplicateEmail(re)
	case "update_booking":
		return re.Status == http.StatusUnprocessableEntity || re.Status == http.StatusForbidden
	}
	return false
}

// ── Restaurants ──────────────────────────────────────────

func (g *Gateway) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	const op = "list_restaurants"
	var out []models.Restaurant
	err := g.client.do(ctx, op, http.MethodGet, "/restaurants", nil, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case errors.Is(err, ErrNotFound):
		g.remote(op)
		return []models.Restaurant{}, nil
	case g.degraded(ctx, op, err):
		return g.store.Restaurants(), nil
	}
	return nil, err
}

func (g *Gateway) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	const op = "get_restaurant"
	var out models.Restaurant
	err := g.client.do(ctx, op, http.MethodGet, "/restaurants/"+url.PathEscape(id), nil, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		if r, ok := g.store.Restaurant(id); ok {
			return r, nil
		}
		return models.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, ErrUnavailable)
	}
	return models.Restaurant{}, err
}

// RestaurantByOwner returns nil without error when the owner has no
// restaurant yet. A 404 from the backend is final: the offline data is
// only consulted when the backend is unreachable.
func (g *Gateway) RestaurantByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error) {
	const op = "restaurant_by_owner"
	var out models.Restaurant
	err := g.client.do(ctx, op, http.MethodGet, "/restaurants/owner/"+url.PathEscape(ownerID), nil, &out)
	switch {
	case err == nil:
		g.remote(op)
		return &out, nil
	case errors.Is(err, ErrNotFound):
		g.remote(op)
		return nil, nil
	case g.degraded(ctx, op, err):
		if r, ok := g.store.RestaurantByOwner(ownerID); ok {
			return &r, nil
		}
		return nil, nil
	}
	return nil, err
}

// SaveRestaurant creates r when it has no id and updates it otherwise
func (g *Gateway) SaveRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error) {
	const op = "save_restaurant"
	var out models.Restaurant
	err := g.client.do(ctx, op, http.MethodPost, "/restaurants", r, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		return g.store.SaveRestaurant(r), nil
	}
	return models.Restaurant{}, err
}

func (g *Gateway) AddReview(ctx context.Context, restaurantID string, review models.Review) (models.Restaurant, error) {
	const op = "add_review"
	var out models.Restaurant
	err := g.client.do(ctx, op, http.MethodPost, "/restaurants/"+url.PathEscape(restaurantID)+"/review", review, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		if r, ok := g.store.AddReview(restaurantID, review); ok {
			return r, nil
		}
		return models.Restaurant{}, fmt.Errorf("restaurant %s: %w", restaurantID, ErrUnavailable)
	}
	return models.Restaurant{}, err
}

// ── Bookings ─────────────────────────────────────────────

func (g *Gateway) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const op = "create_booking"
	var out models.Booking
	err := g.client.do(ctx, op, http.MethodPost, "/bookings", b, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		return g.store.CreateBooking(b), nil
	}
	return models.Booking{}, err
}

func (g *Gateway) UserBookings(ctx context.Context, email string) ([]models.Booking, error) {
	const op = "user_bookings"
	var out []models.Booking
	err := g.client.do(ctx, op, http.MethodGet, "/bookings/user/"+url.PathEscape(email), nil, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case errors.Is(err, ErrNotFound):
		g.remote(op)
		return []models.Booking{}, nil
	case g.degraded(ctx, op, err):
		return g.store.BookingsByEmail(email), nil
	}
	return nil, err
}

func (g *Gateway) RestaurantBookings(ctx context.Context, restaurantID string) ([]models.Booking, error) {
	const op = "restaurant_bookings"
	var out []models.Booking
	err := g.client.do(ctx, op, http.MethodGet, "/bookings/restaurant/"+url.PathEscape(restaurantID), nil, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case errors.Is(err, ErrNotFound):
		g.remote(op)
		return []models.Booking{}, nil
	case g.degraded(ctx, op, err):
		return g.store.BookingsByRestaurant(restaurantID), nil
	}
	return nil, err
}

// UpdateBooking sends a partial update. Offline, a booking unknown to the
// local data is echoed back with just the updated fields.
func (g *Gateway) UpdateBooking(ctx context.Context, id string, u models.BookingUpdate) (models.Booking, error) {
	const op = "update_booking"
	var out models.Booking
	err := g.client.do(ctx, op, http.MethodPut, "/bookings/"+url.PathEscape(id), u, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		if b, ok := g.store.UpdateBooking(id, u); ok {
			return b, nil
		}
		echo := models.Booking{ID: id}
		if u.Status != nil {
			echo.Status = *u.Status
		}
		if u.IsPaid != nil {
			echo.IsPaid = *u.IsPaid
		}
		return echo, nil
	}
	return models.Booking{}, err
}

// ── Auth ─────────────────────────────────────────────────

type loginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

// Login signs in against the backend. Wrong credentials are an error;
// an unreachable backend signs the user in against the offline data.
func (g *Gateway) Login(ctx context.Context, email, password string, role models.UserRole) (models.User, error) {
	const op = "login"
	var out models.User
	err := g.client.do(ctx, op, http.MethodPost, "/auth/login", loginRequest{email, password, role}, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		return g.store.Login(email, role), nil
	}
	var re *RemoteError
	if errors.As(err, &re) && re.Status == http.StatusUnauthorized {
		re.Err = ErrInvalidCredentials
	}
	return models.User{}, err
}

func (g *Gateway) Register(ctx context.Context, u models.User) (models.User, error) {
	const op = "register"
	var out models.User
	err := g.client.do(ctx, op, http.MethodPost, "/auth/register", u, &out)
	switch {
	case err == nil:
		g.remote(op)
		return out, nil
	case g.degraded(ctx, op, err):
		return g.store.Register(u), nil
	}
	var re *RemoteError
	if errors.As(err, &re) && isDuplicateEmail(re) {
		re.Err = ErrEmailTaken
	}
	return models.User{}, err
}

// isDuplicateEmail recognises the backend's answer to a taken email: 409,
// or the legacy 400 "User already exists".
func isDuplicateEmail(re *RemoteError) bool {
	if re.Status == http.StatusConflict {
		return true
	}
	return re.Status == http.StatusBadRequest && strings.Contains(strings.ToLower(re.Message), "already exists")
}
