package service

import (
	"context"
	"fmt"
	"log"

	"github.com/mataraung/trip-api/internal/domain"
)

// TeamService manages team members shown on the site and dashboard
type TeamService struct {
	teamRepo domain.TeamRepository
	cache    domain.CacheRepository
}

// NewTeamService creates a new TeamService instance
func NewTeamService(teamRepo domain.TeamRepository, cache domain.CacheRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		cache:    cache,
	}
}

// Create validates and persists a new team member
func (s *TeamService) Create(ctx context.Context, member *domain.TeamMember) error {
	if err := validateMember(member); err != nil {
		return err
	}
	if member.Status == "" {
		member.Status = domain.TeamStatusActive
	}

	if err := s.teamRepo.Create(ctx, member); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Get returns a single team member with published posts joined
func (s *TeamService) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.teamRepo.GetByID(ctx, id)
}

// List returns members newest first; pass ACTIVE for the public team page
func (s *TeamService) List(ctx context.Context, status string) ([]*domain.TeamMember, error) {
	return s.teamRepo.List(ctx, status)
}

// AverageRating returns the mean rating over the given members
func (s *TeamService) AverageRating(members []*domain.TeamMember) float64 {
	return domain.AverageRating(members)
}

// Update validates and persists member changes
func (s *TeamService) Update(ctx context.Context, member *domain.TeamMember) error {
	if err := validateMember(member); err != nil {
		return err
	}

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// Delete removes a team member
func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func validateMember(member *domain.TeamMember) error {
	if member.Name == "" {
		return fmt.Errorf("%w: member name is required", domain.ErrValidation)
	}
	if member.Rating < 0 || member.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}
	if member.Status != "" && member.Status != domain.TeamStatusActive && member.Status != domain.TeamStatusInactive {
		return fmt.Errorf("%w: unknown member status %q", domain.ErrValidation, member.Status)
	}
	return nil
}

func (s *TeamService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDashboardStats(ctx); err != nil {
		log.Printf("Warning: failed to invalidate dashboard cache: %v", err)
	}
}
