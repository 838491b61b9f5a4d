package domain

import (
	"context"
	"time"
)

// Blog post status constants
const (
	BlogStatusDraft     = "DRAFT"
	BlogStatusPublished = "PUBLISHED"
)

// BlogPost represents an article on the marketing site
type BlogPost struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title,omitempty" json:"title"`
	Slug      string    `bson:"slug,omitempty" json:"slug"`
	Excerpt   string    `bson:"excerpt,omitempty" json:"excerpt"`
	Content   string    `bson:"content,omitempty" json:"content"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Category  string    `bson:"category,omitempty" json:"category"`
	AuthorID  string    `bson:"author_id,omitempty" json:"author_id"`
	Status    string    `bson:"status,omitempty" json:"status"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at"`

	// Author is the joined team member, not persisted on the post document.
	Author *TeamMember `bson:"-" json:"author,omitempty"`
}

// BlogRepository defines operations for managing blog posts
type BlogRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// List returns posts sorted by created_at descending with the author
	// joined. An empty status returns all posts.
	List(ctx context.Context, status string) ([]*BlogPost, error)
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}
