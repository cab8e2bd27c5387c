// Package fallback holds the process-local dataset the gateway serves from
// when the backend cannot be reached. Writes land in memory only and are
// lost when the Store is dropped.
package fallback

import (
	"slices"
	"strings"
	"sync"
	"time"

	"savorybook/models"

	"github.com/google/uuid"
)

const (
	savedRestaurantPrefix = "mock_saved_"
	bookingPrefix         = "mock_b_"
	userPrefix            = "u_mock_"
)

// Store is an in-memory stand-in for the backend. Every read returns a
// copy, so callers never alias the stored documents.
type Store struct {
	mu          sync.Mutex
	restaurants []models.Restaurant
	bookings    []models.Booking
	users       []models.User
	now         func() time.Time
}

// New returns a store seeded with the demo catalog, user and booking
func New() *Store {
	return &Store{
		restaurants: SeedRestaurants(),
		bookings:    DemoBookings(),
		users:       []models.User{DemoUser()},
		now:         time.Now,
	}
}

// NewEmpty returns a store with no data
func NewEmpty() *Store {
	return &Store{now: time.Now}
}

// ── Restaurants ──────────────────────────────────────────

func (s *Store) Restaurants() []models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, cloneRestaurant(r))
	}
	return out
}

func (s *Store) Restaurant(id string) (models.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.restaurantIndex(id); i >= 0 {
		return cloneRestaurant(s.restaurants[i]), true
	}
	return models.Restaurant{}, false
}

func (s *Store) RestaurantByOwner(ownerID string) (models.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if ownerID != "" && r.OwnerID == ownerID {
			return cloneRestaurant(r), true
		}
	}
	return models.Restaurant{}, false
}

// SaveRestaurant replaces the restaurant with the same id, or stores it
// under a synthesized id when it has none.
func (s *Store) SaveRestaurant(r models.Restaurant) models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	r = cloneRestaurant(r)
	r.RecomputeRating()
	now := s.now()
	r.UpdatedAt = now
	if r.ID == "" {
		r.ID = savedRestaurantPrefix + uuid.NewString()
	}
	if i := s.restaurantIndex(r.ID); i >= 0 {
		r.CreatedAt = s.restaurants[i].CreatedAt
		s.restaurants[i] = r
	} else {
		r.CreatedAt = now
		s.restaurants = append(s.restaurants, r)
	}
	return cloneRestaurant(r)
}

// AddReview appends a review to a stored restaurant and recomputes its rating
func (s *Store) AddReview(restaurantID string, review models.Review) (models.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.restaurantIndex(restaurantID)
	if i < 0 {
		return models.Restaurant{}, false
	}
	s.restaurants[i].AddReview(review)
	return cloneRestaurant(s.restaurants[i]), true
}

func (s *Store) restaurantIndex(id string) int {
	return slices.IndexFunc(s.restaurants, func(r models.Restaurant) bool { return r.ID == id })
}

// ── Bookings ─────────────────────────────────────────────

// CreateBooking records b under a synthesized id and creation time
func (s *Store) CreateBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = bookingPrefix + uuid.NewString()
	b.CreatedAt = s.now()
	b.Items = slices.Clone(b.Items)
	s.bookings = append(s.bookings, b)
	return cloneBooking(b)
}

func (s *Store) BookingsByEmail(email string) []models.Booking {
	return s.filterBookings(func(b models.Booking) bool { return strings.EqualFold(b.CustomerEmail, email) })
}

func (s *Store) BookingsByRestaurant(restaurantID string) []models.Booking {
	return s.filterBookings(func(b models.Booking) bool { return b.RestaurantID == restaurantID })
}

func (s *Store) filterBookings(keep func(models.Booking) bool) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}

// UpdateBooking patches the stored booking. The caller is expected to
// have checked the lifecycle already.
func (s *Store) UpdateBooking(id string, u models.BookingUpdate) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.bookings, func(b models.Booking) bool { return b.ID == id })
	if i < 0 {
		return models.Booking{}, false
	}
	if u.Status != nil {
		s.bookings[i].Status = *u.Status
	}
	if u.IsPaid != nil {
		s.bookings[i].IsPaid = *u.IsPaid
	}
	return cloneBooking(s.bookings[i]), true
}

// ── Users ────────────────────────────────────────────────

// Login never fails: a known email and role returns the stored user,
// anything else gets a synthesized account.
func (s *Store) Login(email string, role models.UserRole) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.findUser(email, role); ok {
		return u.Public()
	}
	u := models.User{
		ID:        userPrefix + uuid.NewString(),
		Name:      strings.SplitN(email, "@", 2)[0],
		Email:     email,
		Phone:     "9876543210",
		Role:      role,
		Favorites: []string{},
	}
	return u.Public()
}

// Register stores u under a synthesized id. An account that already
// exists for the email and role is returned unchanged.
func (s *Store) Register(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}
	if existing, ok := s.findUser(u.Email, u.Role); ok {
		return existing.Public()
	}
	u.ID = userPrefix + uuid.NewString()
	u.Password = ""
	u.Favorites = slices.Clone(u.Favorites)
	u.CreatedAt = s.now()
	s.users = append(s.users, u)
	return u.Public()
}

func (s *Store) findUser(email string, role models.UserRole) (models.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && (role == "" || u.Role == role) {
			u.Favorites = slices.Clone(u.Favorites)
			return u, true
		}
	}
	return models.User{}, false
}

func cloneRestaurant(r models.Restaurant) models.Restaurant {
	r.Offers = slices.Clone(r.Offers)
	r.Menu = slices.Clone(r.Menu)
	r.Tables = slices.Clone(r.Tables)
	r.Reviews = slices.Clone(r.Reviews)
	return r
}

func cloneBooking(b models.Booking) models.Booking {
	b.Items = slices.Clone(b.Items)
	return b
}
