package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"savorybook/models"
)

// Actor is who asks for a state change
type Actor string

const (
	ActorOwner    Actor = "owner"    // restaurant dashboard
	ActorCustomer Actor = "customer" // diner's profile page
	ActorSystem   Actor = "system"   // payment step, mark-paid side effect
)

var (
	// ErrTerminalState is returned for any change requested on a Cancelled
	// or Completed booking.
	ErrTerminalState = errors.New("booking is in a terminal state")

	// ErrInvalidTransition is returned when the table has no edge for the
	// requested (from, to, actor).
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnpay is returned when an update tries to clear isPaid.
	ErrUnpay = errors.New("a paid booking cannot be marked unpaid")
)

// TransitionError describes a rejected change. It unwraps to
// ErrTerminalState or ErrInvalidTransition.
type TransitionError struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor Actor
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: %s → %s is not allowed for actor '%s'. Valid transitions from %s are: %s",
		e.Err, e.From, e.To, e.Actor, e.From, describeValidFrom(e.From))
}

func (e *TransitionError) Unwrap() error { return e.Err }

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.BookingStatus `json:"from"`
	To    models.BookingStatus `json:"to"`
	Actor Actor                `json:"actor"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Owner confirms a cash booking; the payment step confirms online ones
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: ActorOwner},
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: ActorSystem},
	// Owner or customer can cancel before the visit
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorOwner},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorCustomer},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorOwner},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorCustomer},
	// Owner records the visit
	{From: models.StatusPending, To: models.StatusCompleted, Actor: ActorOwner},
	{From: models.StatusConfirmed, To: models.StatusCompleted, Actor: ActorOwner},
}

type transitionKey struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor Actor
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	var nexts []models.BookingStatus
	seen := map[models.BookingStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another.
// Staying in a non-terminal state is allowed.
func CanTransition(from, to models.BookingStatus, actor Actor) error {
	if from.IsTerminal() {
		return &TransitionError{From: from, To: to, Actor: actor, Err: ErrTerminalState}
	}
	if from == to || transitionMap[transitionKey{from, to, actor}] {
		return nil
	}
	return &TransitionError{From: from, To: to, Actor: actor, Err: ErrInvalidTransition}
}

// Advance moves b to the requested status
func Advance(b *models.Booking, to models.BookingStatus, actor Actor) error {
	if err := CanTransition(b.Status, to, actor); err != nil {
		return err
	}
	b.Status = to
	return nil
}

// MarkPaid records payment. A Pending booking is confirmed as a side
// effect; Confirmed and Completed keep their status.
func MarkPaid(b *models.Booking) error {
	if b.Status == models.StatusCancelled {
		return &TransitionError{From: b.Status, To: b.Status, Actor: ActorSystem, Err: ErrTerminalState}
	}
	b.IsPaid = true
	if b.Status == models.StatusPending {
		b.Status = models.StatusConfirmed
	}
	return nil
}

// Apply applies a partial update: payment first, then status.
// b is left untouched when any part is rejected.
func Apply(b *models.Booking, u models.BookingUpdate, actor Actor) error {
	next := *b
	if u.IsPaid != nil {
		switch {
		case *u.IsPaid && !next.IsPaid:
			if err := MarkPaid(&next); err != nil {
				return err
			}
		case !*u.IsPaid && next.IsPaid:
			return ErrUnpay
		}
	}
	if u.Status != nil && *u.Status != next.Status {
		if err := Advance(&next, *u.Status, actor); err != nil {
			return err
		}
	}
	*b = next
	return nil
}

// InitialState is the state of a freshly submitted booking. Only a
// completed online payment starts a booking confirmed and paid.
func InitialState(method models.PaymentMethod, paidNow bool) (models.BookingStatus, bool) {
	if paidNow && method.IsOnline() {
		return models.StatusConfirmed, true
	}
	return models.StatusPending, false
}

func describeValidFrom(status models.BookingStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, 0, len(nexts))
	for _, s := range nexts {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
