package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mataraung/trip-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// dashboardCacheTTL keeps the snapshot short-lived; mutations invalidate it
// anyway, the TTL just bounds staleness if an invalidation is lost.
const dashboardCacheTTL = time.Minute

// DashboardService aggregates the admin dashboard snapshot from booking,
// package, blog and team collections. Read-only.
type DashboardService struct {
	bookingRepo domain.BookingRepository
	packageRepo domain.PackageRepository
	blogRepo    domain.BlogRepository
	teamRepo    domain.TeamRepository
	cache       domain.CacheRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	bookingRepo domain.BookingRepository,
	packageRepo domain.PackageRepository,
	blogRepo domain.BlogRepository,
	teamRepo domain.TeamRepository,
	cache domain.CacheRepository,
) *DashboardService {
	return &DashboardService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		blogRepo:    blogRepo,
		teamRepo:    teamRepo,
		cache:       cache,
	}
}

// Stats returns the aggregated dashboard snapshot, served from cache when a
// fresh one exists.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		var cached domain.DashboardStats
		if err := s.cache.GetDashboardStats(ctx, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDashboardStats(ctx, stats, dashboardCacheTTL); err != nil {
			log.Printf("Warning: failed to cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}

func (s *DashboardService) aggregate(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{
		RecentBookings: []*domain.Booking{},
		TopPackages:    []domain.PackageRanking{},
	}

	g, gCtx := errgroup.WithContext(ctx)

	count := func(dest *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gCtx)
			*dest = n
			return err
		})
	}

	count(&stats.TotalPackages, func(c context.Context) (int64, error) {
		return s.packageRepo.Count(c, "")
	})
	count(&stats.ActivePackages, func(c context.Context) (int64, error) {
		return s.packageRepo.Count(c, domain.PackageStatusActive)
	})
	count(&stats.TotalBookings, func(c context.Context) (int64, error) {
		return s.bookingRepo.Count(c, "")
	})
	count(&stats.PendingBookings, func(c context.Context) (int64, error) {
		return s.bookingRepo.Count(c, domain.BookingStatusPending)
	})
	count(&stats.ConfirmedBookings, func(c context.Context) (int64, error) {
		return s.bookingRepo.Count(c, domain.BookingStatusConfirmed)
	})
	count(&stats.TotalBlogPosts, func(c context.Context) (int64, error) {
		return s.blogRepo.Count(c, "")
	})
	count(&stats.PublishedBlogPosts, func(c context.Context) (int64, error) {
		return s.blogRepo.Count(c, domain.BlogStatusPublished)
	})
	count(&stats.TotalTeamMembers, func(c context.Context) (int64, error) {
		return s.teamRepo.Count(c, "")
	})
	count(&stats.ActiveTeamMembers, func(c context.Context) (int64, error) {
		return s.teamRepo.Count(c, domain.TeamStatusActive)
	})

	// Monthly revenue over the current calendar month, half-open window.
	g.Go(func() error {
		monthStart, nextMonthStart := domain.MonthWindow(time.Now().UTC())
		bookings, err := s.bookingRepo.ListConfirmedCreatedBetween(gCtx, monthStart, nextMonthStart)
		if err != nil {
			return err
		}
		stats.MonthlyRevenue = domain.MonthlyRevenue(bookings, monthStart, nextMonthStart)
		return nil
	})

	// Recent bookings, newest first.
	g.Go(func() error {
		recent, err := s.bookingRepo.ListRecent(gCtx, 5)
		if err != nil {
			return err
		}
		if recent != nil {
			stats.RecentBookings = recent
		}
		return nil
	})

	// Top packages by confirmed booking count.
	g.Go(func() error {
		packages, err := s.packageRepo.ListWithConfirmedBookings(gCtx)
		if err != nil {
			return err
		}
		stats.TopPackages = domain.RankPackages(packages, 3)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
	}
	return stats, nil
}
