// Package events publishes booking events for downstream consumers
// (notifications, analytics). Publishing is best effort: a failure is
// logged by the caller and never fails the booking request.
package events

import (
	"context"
	"sync"
	"time"

	"savorybook/models"
)

type Kind string

const (
	BookingCreated       Kind = "booking.created"
	BookingStatusChanged Kind = "booking.status_changed"
)

// BookingEvent is the message body. Kind doubles as the routing key.
type BookingEvent struct {
	Kind           Kind                 `json:"kind"`
	BookingID      string               `json:"bookingId"`
	RestaurantID   string               `json:"restaurantId"`
	CustomerEmail  string               `json:"customerEmail"`
	Status         models.BookingStatus `json:"status"`
	PreviousStatus models.BookingStatus `json:"previousStatus,omitempty"`
	IsPaid         bool                 `json:"isPaid"`
	TotalAmount    float64              `json:"totalAmount"`
	OccurredAt     time.Time            `json:"occurredAt"`
}

func NewBookingEvent(kind Kind, b models.Booking, previous models.BookingStatus, now time.Time) BookingEvent {
	return BookingEvent{
		Kind:           kind,
		BookingID:      b.ID,
		RestaurantID:   b.RestaurantID,
		CustomerEmail:  b.CustomerEmail,
		Status:         b.Status,
		PreviousStatus: previous,
		IsPaid:         b.IsPaid,
		TotalAmount:    b.TotalAmount,
		OccurredAt:     now.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e BookingEvent) error
	Close() error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, BookingEvent) error { return nil }
func (Nop) Close() error                                { return nil }

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []BookingEvent
}

func (r *Recorder) Publish(_ context.Context, e BookingEvent) error {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []BookingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]BookingEvent(nil), r.events...)
}
