package domain

import (
	"context"
	"time"
)

// Package status constants
const (
	PackageStatusActive   = "ACTIVE"
	PackageStatusInactive = "INACTIVE"
)

// TripPackage represents a purchasable trip offering
type TripPackage struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name,omitempty" json:"name"`
	Description string    `bson:"description,omitempty" json:"description"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location"`
	Price       int64     `bson:"price,omitempty" json:"price"` // Price per person in smallest currency unit (IDR)
	Duration    string    `bson:"duration,omitempty" json:"duration"`
	MaxPeople   int       `bson:"max_people,omitempty" json:"max_people"`
	Status      string    `bson:"status,omitempty" json:"status"`
	CreatedAt   time.Time `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty" json:"updated_at"`

	// Bookings holds this package's CONFIRMED bookings when loaded via
	// ListWithConfirmedBookings. Not persisted on the package document.
	Bookings []*Booking `bson:"-" json:"bookings,omitempty"`
}

// PackageRepository defines operations for managing trip packages
type PackageRepository interface {
	Create(ctx context.Context, pkg *TripPackage) error
	GetByID(ctx context.Context, id string) (*TripPackage, error)
	List(ctx context.Context, status string) ([]*TripPackage, error)
	ListWithConfirmedBookings(ctx context.Context) ([]*TripPackage, error)
	Update(ctx context.Context, pkg *TripPackage) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
