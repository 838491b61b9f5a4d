package domain

import (
	"context"
	"time"
)

// Team member status constants
const (
	TeamStatusActive   = "ACTIVE"
	TeamStatusInactive = "INACTIVE"
)

// TeamMember represents a guide or staff member shown on the site
type TeamMember struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Name           string    `bson:"name,omitempty" json:"name"`
	Role           string    `bson:"role,omitempty" json:"role"`
	Specialization string    `bson:"specialization,omitempty" json:"specialization"`
	Experience     string    `bson:"experience,omitempty" json:"experience"`
	Location       string    `bson:"location,omitempty" json:"location"`
	Image          string    `bson:"image,omitempty" json:"image,omitempty"`
	Bio            string    `bson:"bio,omitempty" json:"bio"`
	Achievements   []string  `bson:"achievements,omitempty" json:"achievements"`
	Rating         float64   `bson:"rating,omitempty" json:"rating"`
	Status         string    `bson:"status,omitempty" json:"status"`
	CreatedAt      time.Time `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at,omitempty" json:"updated_at"`

	// Posts holds the member's PUBLISHED blog posts when loaded with the
	// post join. Not persisted on the member document.
	Posts []*BlogPost `bson:"-" json:"posts,omitempty"`
}

// AverageRating returns the arithmetic mean of member ratings.
// An empty collection averages to 0.
func AverageRating(members []*TeamMember) float64 {
	if len(members) == 0 {
		return 0
	}

	var sum float64
	for _, m := range members {
		sum += m.Rating
	}
	return sum / float64(len(members))
}

// TeamRepository defines operations for managing team members
type TeamRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	GetByID(ctx context.Context, id string) (*TeamMember, error)
	// List returns members sorted by created_at descending. An empty status
	// returns all members.
	List(ctx context.Context, status string) ([]*TeamMember, error)
	Update(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
