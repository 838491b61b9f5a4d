package domain

import (
	"sort"
	"time"
)

// BookingStats holds per-status booking tallies. CANCELLED bookings are
// counted in Total but have no bucket of their own.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Declined  int64 `json:"declined"`
}

// PackageRanking is one row of the top-packages dashboard table
type PackageRanking struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

// DashboardStats is the aggregated admin dashboard snapshot
type DashboardStats struct {
	TotalPackages      int64            `json:"total_packages"`
	ActivePackages     int64            `json:"active_packages"`
	TotalBookings      int64            `json:"total_bookings"`
	PendingBookings    int64            `json:"pending_bookings"`
	ConfirmedBookings  int64            `json:"confirmed_bookings"`
	TotalBlogPosts     int64            `json:"total_blog_posts"`
	PublishedBlogPosts int64            `json:"published_blog_posts"`
	TotalTeamMembers   int64            `json:"total_team_members"`
	ActiveTeamMembers  int64            `json:"active_team_members"`
	MonthlyRevenue     int64            `json:"monthly_revenue"`
	RecentBookings     []*Booking       `json:"recent_bookings"`
	TopPackages        []PackageRanking `json:"top_packages"`
}

// MonthWindow returns the half-open interval [start of t's month, start of
// the next month) in t's location.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// MonthlyRevenue sums TotalPrice over CONFIRMED bookings created within
// [monthStart, nextMonthStart). The boundary at month start is included,
// the next month start excluded.
func MonthlyRevenue(bookings []*Booking, monthStart, nextMonthStart time.Time) int64 {
	var sum int64
	for _, b := range bookings {
		if b.Status != BookingStatusConfirmed {
			continue
		}
		if b.CreatedAt.Before(monthStart) || !b.CreatedAt.Before(nextMonthStart) {
			continue
		}
		sum += b.TotalPrice
	}
	return sum
}

// RankPackages folds each package's confirmed bookings into a count and a
// revenue sum, orders by booking count descending (stable, so ties keep
// their input order) and truncates to n.
func RankPackages(packages []*TripPackage, n int) []PackageRanking {
	rankings := make([]PackageRanking, 0, len(packages))
	for _, pkg := range packages {
		var revenue int64
		count := 0
		for _, b := range pkg.Bookings {
			if b.Status != BookingStatusConfirmed {
				continue
			}
			count++
			revenue += b.TotalPrice
		}
		rankings = append(rankings, PackageRanking{
			Name:     pkg.Name,
			Bookings: count,
			Revenue:  revenue,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Bookings > rankings[j].Bookings
	})

	if len(rankings) > n {
		rankings = rankings[:n]
	}
	return rankings
}
