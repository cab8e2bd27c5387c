package models

import "time"

// BookingStatus represents all possible states of a table booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
	StatusCompleted BookingStatus = "Completed"
)

// IsTerminal reports whether no transition leaves s
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Valid reports whether s is a known status
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentUPI  PaymentMethod = "UPI (GPay/PhonePe)"
	PaymentCard PaymentMethod = "Credit/Debit Card"
)

// IsOnline reports whether the method goes through the payment step
func (p PaymentMethod) IsOnline() bool {
	return p == PaymentUPI || p == PaymentCard
}

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p.IsOnline()
}

// Booking is a table reservation with an optional food order. Restaurant
// name, customer contact and item prices are snapshots taken at creation.
type Booking struct {
	ID              string        `json:"id" gorm:"primaryKey"`
	RestaurantID    string        `json:"restaurantId" gorm:"index" validate:"required"`
	RestaurantName  string        `json:"restaurantName"`
	UserID          string        `json:"userId"`
	CustomerName    string        `json:"customerName" validate:"required"`
	CustomerPhone   string        `json:"customerPhone" validate:"required"`
	CustomerEmail   string        `json:"customerEmail" gorm:"index" validate:"required,email"`
	Date            string        `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string        `json:"time" validate:"required"`
	Guests          int           `json:"guests" validate:"min=1"`
	TableType       TableType     `json:"tableType"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	Status          BookingStatus `json:"status" gorm:"not null;default:'Pending'"`
	Items           []OrderItem   `json:"items,omitempty" gorm:"serializer:json"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	TotalAmount     float64       `json:"totalAmount"`
	IsPaid          bool          `json:"isPaid" gorm:"default:false"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// OrderItem is a menu line frozen at order time
type OrderItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`  // snapshot name
	Price    float64 `json:"price"` // snapshot price at time of order
	Quantity int     `json:"quantity"`
}

// BookingUpdate is the partial body of PUT /bookings/{id}
type BookingUpdate struct {
	Status *BookingStatus `json:"status,omitempty"`
	IsPaid *bool          `json:"isPaid,omitempty"`
}

func (b *Booking) validateEnums() error {
	var errs ValidationError
	if !b.PaymentMethod.Valid() {
		errs = append(errs, FieldError{Field: "paymentMethod", Rule: "oneof"})
	}
	if b.TableType != "" && !b.TableType.Valid() {
		errs = append(errs, FieldError{Field: "tableType", Rule: "oneof"})
	}
	if b.Status != "" && !b.Status.Valid() {
		errs = append(errs, FieldError{Field: "status", Rule: "oneof"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
