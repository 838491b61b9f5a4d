package service

import (
	"context"
	"fmt"
	"log"

	"github.com/mataraung/trip-api/internal/domain"
)

// BlogService manages blog posts
type BlogService struct {
	blogRepo domain.BlogRepository
	teamRepo domain.TeamRepository
	cache    domain.CacheRepository
}

// NewBlogService creates a new BlogService instance
func NewBlogService(blogRepo domain.BlogRepository, teamRepo domain.TeamRepository, cache domain.CacheRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		teamRepo: teamRepo,
		cache:    cache,
	}
}

// Create validates the author reference and persists a new post
func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost) error {
	if err := s.validatePost(ctx, post); err != nil {
		return err
	}
	if post.Status == "" {
		post.Status = domain.BlogStatusDraft
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Get returns a post by id with its author joined
func (s *BlogService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// GetBySlug returns a post by slug, used by the public blog detail page
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.blogRepo.GetBySlug(ctx, slug)
}

// List returns posts newest first; pass PUBLISHED for the public site
func (s *BlogService) List(ctx context.Context, status string) ([]*domain.BlogPost, error) {
	return s.blogRepo.List(ctx, status)
}

// Update validates and persists post changes
func (s *BlogService) Update(ctx context.Context, post *domain.BlogPost) error {
	if err := s.validatePost(ctx, post); err != nil {
		return err
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Delete removes a post
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func (s *BlogService) validatePost(ctx context.Context, post *domain.BlogPost) error {
	if post.Title == "" {
		return fmt.Errorf("%w: post title is required", domain.ErrValidation)
	}
	if post.Slug == "" {
		return fmt.Errorf("%w: post slug is required", domain.ErrValidation)
	}
	if post.Status != "" && post.Status != domain.BlogStatusDraft && post.Status != domain.BlogStatusPublished {
		return fmt.Errorf("%w: unknown post status %q", domain.ErrValidation, post.Status)
	}
	if post.AuthorID != "" {
		if _, err := s.teamRepo.GetByID(ctx, post.AuthorID); err != nil {
			if err == domain.ErrNotFound {
				return fmt.Errorf("%w: author %s not found", domain.ErrValidation, post.AuthorID)
			}
			return err
		}
	}
	return nil
}

func (s *BlogService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboardStats(ctx); err != nil {
		log.Printf("Warning: failed to invalidate dashboard cache: %v", err)
	}
}
