package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mataraung/trip-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// BookingService enforces the booking lifecycle: price snapshot at creation,
// declared status transitions, and dashboard cache invalidation on mutation.
type BookingService struct {
	bookingRepo domain.BookingRepository
	packageRepo domain.PackageRepository
	cache       domain.CacheRepository
}

// NewBookingService creates a new BookingService instance
func NewBookingService(bookingRepo domain.BookingRepository, packageRepo domain.PackageRepository, cache domain.CacheRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		cache:       cache,
	}
}

// CreateBookingInput carries a customer booking submission
type CreateBookingInput struct {
	CustomerName string
	Whatsapp     string
	People       int
	PackageID    string
	TripDate     time.Time
	Notes        string
}

// Create loads the referenced package, snapshots the total price and persists
// a PENDING booking. Returns domain.ErrNotFound when the package does not
// exist and domain.ErrValidation for a bad headcount.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	pkg, err := s.packageRepo.GetByID(ctx, in.PackageID)
	if err != nil {
		return nil, err
	}

	booking, err := domain.NewBooking(in.CustomerName, in.Whatsapp, in.People, pkg, in.TripDate, in.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.invalidateDashboard(ctx)
	return booking, nil
}

// UpdateStatus moves a booking to the given declared status. Re-applying the
// current status is a harmless rewrite.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.TransitionAllowed(booking.Status, status) {
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s", domain.ErrValidation, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	s.invalidateDashboard(ctx)
	return booking, nil
}

// Approve marks a booking CONFIRMED
func (s *BookingService) Approve(ctx context.Context, id string) (*domain.Booking, error) {
	return s.UpdateStatus(ctx, id, domain.BookingStatusConfirmed)
}

// Decline marks a booking DECLINED
func (s *BookingService) Decline(ctx context.Context, id string) (*domain.Booking, error) {
	return s.UpdateStatus(ctx, id, domain.BookingStatusDeclined)
}

// Get returns a booking with its package joined
func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// List returns bookings newest first, optionally filtered by status
func (s *BookingService) List(ctx context.Context, status string) ([]*domain.Booking, error) {
	if status != "" && !domain.ValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}
	return s.bookingRepo.List(ctx, status)
}

// Delete removes a booking
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Stats tallies bookings per status. CANCELLED bookings count toward Total
// only.
func (s *BookingService) Stats(ctx context.Context) (*domain.BookingStats, error) {
	stats := &domain.BookingStats{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.bookingRepo.Count(gCtx, "")
		stats.Total = count
		return err
	})
	g.Go(func() error {
		count, err := s.bookingRepo.Count(gCtx, domain.BookingStatusPending)
		stats.Pending = count
		return err
	})
	g.Go(func() error {
		count, err := s.bookingRepo.Count(gCtx, domain.BookingStatusConfirmed)
		stats.Confirmed = count
		return err
	})
	g.Go(func() error {
		count, err := s.bookingRepo.Count(gCtx, domain.BookingStatusDeclined)
		stats.Declined = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	return stats, nil
}

// invalidateDashboard drops the cached dashboard snapshot after a mutation.
// Cache failures are logged, never surfaced to the caller.
func (s *BookingService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboardStats(ctx); err != nil {
		log.Printf("Warning: failed to invalidate dashboard cache: %v", err)
	}
}
