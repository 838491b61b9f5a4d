package service

import (
	"context"
	"fmt"
	"log"

	"github.com/mataraung/trip-api/internal/domain"
)

// PackageService manages trip packages for the dashboard and public site
type PackageService struct {
	packageRepo domain.PackageRepository
	cache       domain.CacheRepository
}

// NewPackageService creates a new PackageService instance
func NewPackageService(packageRepo domain.PackageRepository, cache domain.CacheRepository) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		cache:       cache,
	}
}

// Create validates and persists a new trip package
func (s *PackageService) Create(ctx context.Context, pkg *domain.TripPackage) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}
	if pkg.Status == "" {
		pkg.Status = domain.PackageStatusActive
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Get returns a single package
func (s *PackageService) Get(ctx context.Context, id string) (*domain.TripPackage, error) {
	return s.packageRepo.GetByID(ctx, id)
}

// List returns packages newest first; pass ACTIVE for the public site
func (s *PackageService) List(ctx context.Context, status string) ([]*domain.TripPackage, error) {
	return s.packageRepo.List(ctx, status)
}

// ListWithConfirmedBookings returns all packages with confirmed bookings
// joined, for the dashboard packages page
func (s *PackageService) ListWithConfirmedBookings(ctx context.Context) ([]*domain.TripPackage, error) {
	return s.packageRepo.ListWithConfirmedBookings(ctx)
}

// Update validates and persists package changes
func (s *PackageService) Update(ctx context.Context, pkg *domain.TripPackage) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Delete removes a package
func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func validatePackage(pkg *domain.TripPackage) error {
	if pkg.Name == "" {
		return fmt.Errorf("%w: package name is required", domain.ErrValidation)
	}
	if pkg.Price < 0 {
		return fmt.Errorf("%w: package price cannot be negative", domain.ErrValidation)
	}
	if pkg.Status != "" && pkg.Status != domain.PackageStatusActive && pkg.Status != domain.PackageStatusInactive {
		return fmt.Errorf("%w: unknown package status %q", domain.ErrValidation, pkg.Status)
	}
	return nil
}

func (s *PackageService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboardStats(ctx); err != nil {
		log.Printf("Warning: failed to invalidate dashboard cache: %v", err)
	}
}
