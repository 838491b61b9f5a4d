package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewBooking(t *testing.T) {
	pkg := &TripPackage{
		ID:        "pkg_bromo",
		Name:      "Bromo Sunrise",
		Price:     100000,
		MaxPeople: 10,
		Status:    PackageStatusActive,
	}
	tripDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		customer  string
		people    int
		wantErr   bool
		wantTotal int64
	}{
		{name: "single person", customer: "Budi", people: 1, wantTotal: 100000},
		{name: "three people", customer: "Budi", people: 3, wantTotal: 300000},
		{name: "zero people rejected", customer: "Budi", people: 0, wantErr: true},
		{name: "negative people rejected", customer: "Budi", people: -2, wantErr: true},
		{name: "missing customer name rejected", customer: "", people: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBooking(tt.customer, "081234567890", tt.people, pkg, tripDate, "")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewBooking() expected error, got booking %+v", b)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("NewBooking() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBooking() unexpected error: %v", err)
			}
			if b.TotalPrice != tt.wantTotal {
				t.Errorf("TotalPrice = %d, want %d", b.TotalPrice, tt.wantTotal)
			}
			if b.Status != BookingStatusPending {
				t.Errorf("Status = %s, want %s", b.Status, BookingStatusPending)
			}
		})
	}
}

func TestNewBookingSnapshotsPrice(t *testing.T) {
	pkg := &TripPackage{ID: "pkg_ijen", Name: "Ijen Blue Fire", Price: 250000}

	b, err := NewBooking("Siti", "081234567890", 4, pkg, time.Now(), "vegetarian lunch")
	if err != nil {
		t.Fatalf("NewBooking() unexpected error: %v", err)
	}

	// A later package price change must not affect the booked total.
	pkg.Price = 999999
	if b.TotalPrice != 1000000 {
		t.Errorf("TotalPrice = %d, want 1000000", b.TotalPrice)
	}
}

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: BookingStatusPending, to: BookingStatusConfirmed, want: true},
		{name: "pending to declined", from: BookingStatusPending, to: BookingStatusDeclined, want: true},
		{name: "confirmed rewrite is idempotent", from: BookingStatusConfirmed, to: BookingStatusConfirmed, want: true},
		{name: "declined rewrite is idempotent", from: BookingStatusDeclined, to: BookingStatusDeclined, want: true},
		{name: "admin may reverse a decision", from: BookingStatusDeclined, to: BookingStatusConfirmed, want: true},
		{name: "confirmed to cancelled", from: BookingStatusConfirmed, to: BookingStatusCancelled, want: true},
		{name: "unknown target rejected", from: BookingStatusPending, to: "APPROVED", want: false},
		{name: "unknown source rejected", from: "NEW", to: BookingStatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransitionAllowed(tt.from, tt.to); got != tt.want {
				t.Errorf("TransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
