// Package dashboard derives the restaurant owner's view from a booking
// collection. Nothing here is stored; every call folds the input again.
package dashboard

import (
	"sort"
	"time"

	"savorybook/models"

	"github.com/shopspring/decimal"
)

// NewWindow is how long a booking is highlighted as new
const NewWindow = 5 * time.Minute

type Stats struct {
	Total     int     `json:"total"`
	Confirmed int     `json:"confirmed"`
	Guests    int     `json:"guests"`
	Revenue   float64 `json:"revenue"`
}

// Compute folds bookings into the headline numbers. Guests count only
// confirmed bookings; revenue counts completed or paid ones.
func Compute(bookings []models.Booking) Stats {
	var s Stats
	revenue := decimal.Zero
	for _, b := range bookings {
		s.Total++
		if b.Status == models.StatusConfirmed {
			s.Confirmed++
			s.Guests += b.Guests
		}
		if b.Status == models.StatusCompleted || b.IsPaid {
			revenue = revenue.Add(decimal.NewFromFloat(b.TotalAmount))
		}
	}
	s.Revenue = revenue.InexactFloat64()
	return s
}

// Summary groups counts by status
func Summary(bookings []models.Booking) map[models.BookingStatus]int {
	summary := map[models.BookingStatus]int{}
	for _, b := range bookings {
		summary[b.Status]++
	}
	return summary
}

// IsNew reports whether b was created within NewWindow before now
func IsNew(b models.Booking, now time.Time) bool {
	if b.CreatedAt.IsZero() {
		return false
	}
	age := now.Sub(b.CreatedAt)
	return age >= 0 && age < NewWindow
}

func NewBookings(bookings []models.Booking, now time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if IsNew(b, now) {
			out = append(out, b)
		}
	}
	return out
}

type Row struct {
	models.Booking
	IsNew bool `json:"isNew"`
}

// View is everything the owner dashboard renders
type View struct {
	Stats    Stats                        `json:"stats"`
	Summary  map[models.BookingStatus]int `json:"summary"`
	NewCount int                          `json:"newCount"`
	Bookings []Row                        `json:"bookings"`
}

// Build assembles the dashboard, newest booking first
func Build(bookings []models.Booking, now time.Time) View {
	v := View{
		Stats:    Compute(bookings),
		Summary:  Summary(bookings),
		Bookings: make([]Row, 0, len(bookings)),
	}
	for _, b := range bookings {
		row := Row{Booking: b, IsNew: IsNew(b, now)}
		if row.IsNew {
			v.NewCount++
		}
		v.Bookings = append(v.Bookings, row)
	}
	sort.SliceStable(v.Bookings, func(i, j int) bool {
		return v.Bookings[i].CreatedAt.After(v.Bookings[j].CreatedAt)
	})
	return v
}
