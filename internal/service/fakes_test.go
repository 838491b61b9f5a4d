package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mataraung/trip-api/internal/domain"
)

// In-memory repository fakes for service tests. They mimic the store's
// observable behavior: generated ids, created_at ordering, package joins
// and ErrNotFound on missing documents.

type memPackageRepo struct {
	mu       sync.Mutex
	seq      int
	packages map[string]*domain.TripPackage
	bookings *memBookingRepo
}

func newMemPackageRepo() *memPackageRepo {
	return &memPackageRepo{packages: make(map[string]*domain.TripPackage)}
}

func (r *memPackageRepo) Create(_ context.Context, pkg *domain.TripPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	pkg.ID = fmt.Sprintf("pkg-%d", r.seq)
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = time.Now().UTC()
	}
	r.packages[pkg.ID] = pkg
	return nil
}

func (r *memPackageRepo) GetByID(_ context.Context, id string) (*domain.TripPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pkg, ok := r.packages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return pkg, nil
}

func (r *memPackageRepo) List(_ context.Context, status string) ([]*domain.TripPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.TripPackage
	for _, pkg := range r.packages {
		if status == "" || pkg.Status == status {
			out = append(out, pkg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memPackageRepo) ListWithConfirmedBookings(ctx context.Context) ([]*domain.TripPackage, error) {
	packages, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, pkg := range packages {
		pkg.Bookings = nil
		if r.bookings == nil {
			continue
		}
		for _, b := range r.bookings.all() {
			if b.PackageID == pkg.ID && b.Status == domain.BookingStatusConfirmed {
				pkg.Bookings = append(pkg.Bookings, b)
			}
		}
	}
	return packages, nil
}

func (r *memPackageRepo) Update(_ context.Context, pkg *domain.TripPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.packages[pkg.ID]; !ok {
		return domain.ErrNotFound
	}
	r.packages[pkg.ID] = pkg
	return nil
}

func (r *memPackageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.packages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.packages, id)
	return nil
}

func (r *memPackageRepo) Count(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, pkg := range r.packages {
		if status == "" || pkg.Status == status {
			n++
		}
	}
	return n, nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	seq      int
	bookings map[string]*domain.Booking
	packages *memPackageRepo
}

func newMemBookingRepo(packages *memPackageRepo) *memBookingRepo {
	r := &memBookingRepo{bookings: make(map[string]*domain.Booking), packages: packages}
	if packages != nil {
		packages.bookings = r
	}
	return r
}

func (r *memBookingRepo) all() []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out
}

func (r *memBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	booking.ID = fmt.Sprintf("bkg-%d", r.seq)
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	booking, ok := r.bookings[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if booking.Package == nil && r.packages != nil {
		if pkg, err := r.packages.GetByID(ctx, booking.PackageID); err == nil {
			booking.Package = pkg
		}
	}
	return booking, nil
}

func (r *memBookingRepo) List(_ context.Context, status string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.all() {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memBookingRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	out, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memBookingRepo) ListConfirmedCreatedBetween(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.all() {
		if b.Status != domain.BookingStatusConfirmed {
			continue
		}
		if b.CreatedAt.Before(from) || !b.CreatedAt.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) Count(_ context.Context, status string) (int64, error) {
	var n int64
	for _, b := range r.all() {
		if status == "" || b.Status == status {
			n++
		}
	}
	return n, nil
}

type memBlogRepo struct {
	mu    sync.Mutex
	seq   int
	posts map[string]*domain.BlogPost
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{posts: make(map[string]*domain.BlogPost)}
}

func (r *memBlogRepo) Create(_ context.Context, post *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	post.ID = fmt.Sprintf("post-%d", r.seq)
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *memBlogRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (r *memBlogRepo) GetBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, post := range r.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memBlogRepo) List(_ context.Context, status string) ([]*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.BlogPost
	for _, post := range r.posts {
		if status == "" || post.Status == status {
			out = append(out, post)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memBlogRepo) Update(_ context.Context, post *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrNotFound
	}
	r.posts[post.ID] = post
	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memBlogRepo) Count(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, post := range r.posts {
		if status == "" || post.Status == status {
			n++
		}
	}
	return n, nil
}

type memTeamRepo struct {
	mu      sync.Mutex
	seq     int
	members map[string]*domain.TeamMember
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{members: make(map[string]*domain.TeamMember)}
}

func (r *memTeamRepo) Create(_ context.Context, member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	member.ID = fmt.Sprintf("member-%d", r.seq)
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}
	r.members[member.ID] = member
	return nil
}

func (r *memTeamRepo) GetByID(_ context.Context, id string) (*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return member, nil
}

func (r *memTeamRepo) List(_ context.Context, status string) ([]*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.TeamMember
	for _, member := range r.members {
		if status == "" || member.Status == status {
			out = append(out, member)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTeamRepo) Update(_ context.Context, member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[member.ID]; !ok {
		return domain.ErrNotFound
	}
	r.members[member.ID] = member
	return nil
}

func (r *memTeamRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *memTeamRepo) Count(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, member := range r.members {
		if status == "" || member.Status == status {
			n++
		}
	}
	return n, nil
}

type memSettingsRepo struct {
	mu       sync.Mutex
	settings *domain.Settings
}

func (r *memSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, domain.ErrNotFound
	}
	return r.settings, nil
}

func (r *memSettingsRepo) Create(_ context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings.ID = "settings-1"
	r.settings = settings
	return nil
}

func (r *memSettingsRepo) Update(_ context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return domain.ErrNotFound
	}
	r.settings = settings
	return nil
}

// memCache serializes through JSON like the redis-backed cache so tests
// catch anything that does not round-trip.
type memCache struct {
	mu            sync.Mutex
	entries       map[string][]byte
	invalidations int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return domain.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *memCache) GetDashboardStats(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, "dashboard:stats", dest)
}

func (c *memCache) SetDashboardStats(ctx context.Context, stats interface{}, ttl time.Duration) error {
	return c.Set(ctx, "dashboard:stats", stats, ttl)
}

func (c *memCache) InvalidateDashboardStats(ctx context.Context) error {
	c.mu.Lock()
	c.invalidations++
	c.mu.Unlock()
	return c.Delete(ctx, "dashboard:stats")
}

func (c *memCache) GetSettings(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, "settings:company", dest)
}

func (c *memCache) SetSettings(ctx context.Context, settings interface{}, ttl time.Duration) error {
	return c.Set(ctx, "settings:company", settings, ttl)
}

func (c *memCache) InvalidateSettings(ctx context.Context) error {
	return c.Delete(ctx, "settings:company")
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
