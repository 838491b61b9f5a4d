package domain

import (
	"context"
	"fmt"
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusDeclined  = "DECLINED"
	BookingStatusCancelled = "CANCELLED"
)

// Booking represents a customer's request to book a trip package.
// TotalPrice is snapshotted at creation time from the package price;
// later package price changes never touch existing bookings.
type Booking struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	CustomerName string    `bson:"customer_name,omitempty" json:"customer_name"`
	Whatsapp     string    `bson:"whatsapp,omitempty" json:"whatsapp"`
	People       int       `bson:"people,omitempty" json:"people"`
	PackageID    string    `bson:"package_id,omitempty" json:"package_id"`
	TripDate     time.Time `bson:"trip_date,omitempty" json:"trip_date"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalPrice   int64     `bson:"total_price,omitempty" json:"total_price"`
	Status       string    `bson:"status,omitempty" json:"status"`
	CreatedAt    time.Time `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at,omitempty" json:"updated_at"`

	// Package is the joined trip package, loaded by the repository.
	// Not persisted on the booking document.
	Package *TripPackage `bson:"-" json:"package,omitempty"`
}

// bookingStatuses is the closed set of declared booking states.
var bookingStatuses = map[string]bool{
	BookingStatusPending:   true,
	BookingStatusConfirmed: true,
	BookingStatusDeclined:  true,
	BookingStatusCancelled: true,
}

// ValidBookingStatus reports whether s is one of the declared booking states.
func ValidBookingStatus(s string) bool {
	return bookingStatuses[s]
}

// bookingTransitions is the admin status-transition table. The expected flow
// is PENDING -> CONFIRMED or PENDING -> DECLINED, but re-applying a decision
// is a harmless idempotent rewrite and reversing one (CONFIRMED <-> DECLINED)
// stays allowed for admin corrections, matching how the dashboard has always
// behaved. CANCELLED is reachable only through the generic status endpoint.
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusPending, BookingStatusConfirmed, BookingStatusDeclined, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusConfirmed, BookingStatusDeclined, BookingStatusCancelled},
	BookingStatusDeclined:  {BookingStatusDeclined, BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusCancelled: {BookingStatusCancelled, BookingStatusConfirmed, BookingStatusDeclined},
}

// TransitionAllowed reports whether a booking may move from one status to
// another. Unknown statuses on either side are rejected.
func TransitionAllowed(from, to string) bool {
	targets, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// NewBooking builds a PENDING booking for the given package, snapshotting
// the total price as price per person times headcount.
func NewBooking(customerName, whatsapp string, people int, pkg *TripPackage, tripDate time.Time, notes string) (*Booking, error) {
	if people < 1 {
		return nil, fmt.Errorf("%w: people must be at least 1", ErrValidation)
	}
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	return &Booking{
		CustomerName: customerName,
		Whatsapp:     whatsapp,
		People:       people,
		PackageID:    pkg.ID,
		TripDate:     tripDate,
		Notes:        notes,
		TotalPrice:   pkg.Price * int64(people),
		Status:       BookingStatusPending,
		Package:      pkg,
	}, nil
}

// BookingRepository defines operations for managing bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// List returns bookings sorted by created_at descending, with the package
	// joined. An empty status returns all bookings.
	List(ctx context.Context, status string) ([]*Booking, error)
	ListRecent(ctx context.Context, limit int) ([]*Booking, error)
	ListConfirmedCreatedBetween(ctx context.Context, from, to time.Time) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
