// Package reservations runs the diner and owner flows on top of the
// gateway: pricing a cart, submitting a booking with its simulated
// payment step, moving bookings through their lifecycle and building the
// owner dashboard.
package reservations

//go:generate mockgen -source=service.go -destination=mock_gateway_test.go -package=reservations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"savorybook/dashboard"
	"savorybook/logger"
	"savorybook/models"
	"savorybook/pricing"
	"savorybook/statemachine"

	"github.com/google/uuid"
)

// DefaultPaymentDelay is how long the simulated online payment takes
const DefaultPaymentDelay = 2 * time.Second

// GuestUserID is stored on bookings made without an account
const GuestUserID = "guest"

var ErrUnknownCoupon = errors.New("coupon is not offered by this restaurant")

// Gateway is the data access the flows need. *gateway.Gateway satisfies it.
type Gateway interface {
	GetRestaurant(ctx context.Context, id string) (models.Restaurant, error)
	RestaurantByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error)
	SaveRestaurant(ctx context.Context, r models.Restaurant) (models.Restaurant, error)
	AddReview(ctx context.Context, restaurantID string, review models.Review) (models.Restaurant, error)
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	UserBookings(ctx context.Context, email string) ([]models.Booking, error)
	RestaurantBookings(ctx context.Context, restaurantID string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, u models.BookingUpdate) (models.Booking, error)
}

type Service struct {
	gw           Gateway
	now          func() time.Time
	paymentDelay time.Duration
	log          *logger.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPaymentDelay(d time.Duration) Option {
	return func(s *Service) { s.paymentDelay = d }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(gw Gateway, opts ...Option) *Service {
	s := &Service{
		gw:           gw,
		now:          time.Now,
		paymentDelay: DefaultPaymentDelay,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ── Diner flow ───────────────────────────────────────────

// Eligibility looks up the diner's booking history. When it cannot be
// loaded the diner still gets the seasonal discount.
func (s *Service) Eligibility(ctx context.Context, user *models.User) pricing.Eligibility {
	if user == nil {
		return pricing.Guest
	}
	bookings, err := s.gw.UserBookings(ctx, user.Email)
	if err != nil {
		s.log.Warn(ctx, "eligibility", "could not load booking history", slog.String("error", err.Error()))
		return pricing.Eligibility{Authenticated: true}
	}
	return pricing.Returning(len(bookings))
}

// Quote prices a cart at a restaurant. The coupon, when given, must be
// one of the restaurant's offers.
func (s *Service) Quote(r models.Restaurant, cart pricing.Cart, e pricing.Eligibility, coupon string) (pricing.Quote, error) {
	if coupon != "" && !r.HasOffer(coupon) {
		return pricing.Quote{}, fmt.Errorf("%q: %w", coupon, ErrUnknownCoupon)
	}
	return pricing.Compute(cart, r.Menu, e, coupon), nil
}

// SubmitRequest is what the booking form sends
type SubmitRequest struct {
	RestaurantID    string
	User            *models.User // nil for guests
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            string
	Time            string
	Guests          int
	TableType       models.TableType
	SpecialRequests string
	PaymentMethod   models.PaymentMethod
	Cart            pricing.Cart
	Coupon          string
	// PayNow is set when the diner went through the online payment step
	PayNow bool
}

type SubmitResult struct {
	Booking models.Booking `json:"booking"`
	Quote   pricing.Quote  `json:"quote"`
}

// Submit validates the form, prices the order, runs the payment step for
// online methods and creates the booking.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	b := models.Booking{
		RestaurantID:    req.RestaurantID,
		UserID:          GuestUserID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		TableType:       req.TableType,
		SpecialRequests: req.SpecialRequests,
		PaymentMethod:   req.PaymentMethod,
	}
	if req.User != nil {
		b.UserID = req.User.ID
	}
	if err := models.Validate(&b); err != nil {
		return SubmitResult{}, err
	}

	r, err := s.gw.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("load restaurant: %w", err)
	}
	quote, err := s.Quote(r, req.Cart, s.Eligibility(ctx, req.User), req.Coupon)
	if err != nil {
		return SubmitResult{}, err
	}

	b.RestaurantName = r.Name
	b.Items = pricing.OrderItems(req.Cart, r.Menu)
	b.TotalAmount = quote.FinalTotal
	if req.Coupon != "" {
		b.SpecialRequests = strings.TrimSpace(fmt.Sprintf("%s (Coupon: %s)", b.SpecialRequests, req.Coupon))
	}

	paidNow := req.PayNow && req.PaymentMethod.IsOnline()
	if paidNow {
		if err := s.pay(ctx); err != nil {
			return SubmitResult{}, err
		}
	}
	b.Status, b.IsPaid = statemachine.InitialState(req.PaymentMethod, paidNow)

	created, err := s.gw.CreateBooking(ctx, b)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create booking: %w", err)
	}
	s.log.Info(ctx, "submit_booking", "booking created",
		slog.String("booking_id", created.ID),
		slog.String("status", string(created.Status)),
		slog.Float64("total", created.TotalAmount))
	return SubmitResult{Booking: created, Quote: quote}, nil
}

// pay stands in for a payment provider: it only waits
func (s *Service) pay(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}
	t := time.NewTimer(s.paymentDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("payment: %w", ctx.Err())
	}
}

// AddReview posts a review; the rating is recomputed by whoever stores it
func (s *Service) AddReview(ctx context.Context, restaurantID string, review models.Review) (models.Restaurant, error) {
	if err := models.Validate(&review); err != nil {
		return models.Restaurant{}, err
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.Date == "" {
		review.Date = s.now().Format("2006-01-02")
	}
	return s.gw.AddReview(ctx, restaurantID, review)
}

// ── Lifecycle ────────────────────────────────────────────

// MarkPaid records payment on b. A pending booking is confirmed too.
func (s *Service) MarkPaid(ctx context.Context, b models.Booking) (models.Booking, error) {
	if err := statemachine.MarkPaid(&b); err != nil {
		return models.Booking{}, err
	}
	paid := true
	return s.gw.UpdateBooking(ctx, b.ID, models.BookingUpdate{IsPaid: &paid, Status: &b.Status})
}

func (s *Service) Cancel(ctx context.Context, b models.Booking, actor statemachine.Actor) (models.Booking, error) {
	return s.SetStatus(ctx, b, models.StatusCancelled, actor)
}

// SetStatus moves b to status after checking the lifecycle. Asking for
// the current status changes nothing and sends nothing.
func (s *Service) SetStatus(ctx context.Context, b models.Booking, status models.BookingStatus, actor statemachine.Actor) (models.Booking, error) {
	from := b.Status
	if err := statemachine.Advance(&b, status, actor); err != nil {
		return models.Booking{}, err
	}
	if from == status {
		return b, nil
	}
	return s.gw.UpdateBooking(ctx, b.ID, models.BookingUpdate{Status: &status})
}

// ── Owner flow ───────────────────────────────────────────

// Dashboard is the owner's home screen. Restaurant is nil while the owner
// has not created a restaurant yet.
type Dashboard struct {
	Restaurant *models.Restaurant `json:"restaurant"`
	View       dashboard.View     `json:"view"`
}

func (d *Dashboard) Onboarding() bool { return d.Restaurant == nil }

func (s *Service) OwnerDashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	r, err := s.gw.RestaurantByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load restaurant: %w", err)
	}
	if r == nil {
		return &Dashboard{View: dashboard.Build(nil, s.now())}, nil
	}
	bookings, err := s.gw.RestaurantBookings(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return &Dashboard{Restaurant: r, View: dashboard.Build(bookings, s.now())}, nil
}

// SaveProfile stores the owner's restaurant, filling the defaults a new
// profile starts with.
func (s *Service) SaveProfile(ctx context.Context, owner models.User, r models.Restaurant) (models.Restaurant, error) {
	r.OwnerID = owner.ID
	if strings.TrimSpace(r.Name) == "" {
		r.Name = "New Restaurant"
	}
	if r.Cuisine == "" {
		r.Cuisine = models.CuisineIndian
	}
	if r.PriceRange == "" {
		r.PriceRange = models.PriceMedium
	}
	if r.OpeningTime == "" {
		r.OpeningTime = "09:00"
	}
	if r.ClosingTime == "" {
		r.ClosingTime = "22:00"
	}
	if len(r.Reviews) == 0 && r.Rating == 0 {
		r.Rating = 5
	}
	if r.Offers == nil {
		r.Offers = []models.Offer{}
	}
	if r.Menu == nil {
		r.Menu = []models.MenuItem{}
	}
	if r.Tables == nil {
		r.Tables = []models.Table{}
	}
	if r.Reviews == nil {
		r.Reviews = []models.Review{}
	}
	return s.gw.SaveRestaurant(ctx, r)
}

// AddMenuItem validates item, gives it an id and saves the menu
func (s *Service) AddMenuItem(ctx context.Context, r models.Restaurant, item models.MenuItem) (models.Restaurant, error) {
	if err := models.Validate(&item); err != nil {
		return models.Restaurant{}, err
	}
	item.ID = "m_" + uuid.NewString()
	if item.Category == "" {
		item.Category = "Main"
	}
	r.Menu = append(append([]models.MenuItem{}, r.Menu...), item)
	return s.gw.SaveRestaurant(ctx, r)
}

func (s *Service) RemoveMenuItem(ctx context.Context, r models.Restaurant, itemID string) (models.Restaurant, error) {
	menu := make([]models.MenuItem, 0, len(r.Menu))
	for _, m := range r.Menu {
		if m.ID != itemID {
			menu = append(menu, m)
		}
	}
	r.Menu = menu
	return s.gw.SaveRestaurant(ctx, r)
}
