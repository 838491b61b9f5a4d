package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mataraung/trip-api/internal/domain"
)

const settingsCacheTTL = 5 * time.Minute

// SettingsService manages the singleton company settings document
type SettingsService struct {
	settingsRepo domain.SettingsRepository
	cache        domain.CacheRepository
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(settingsRepo domain.SettingsRepository, cache domain.CacheRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Get returns the settings document, creating it with defaults on first read.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if s.cache != nil {
		var cached domain.Settings
		if err := s.cache.GetSettings(ctx, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		settings = domain.DefaultSettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSettings(ctx, settings, settingsCacheTTL); err != nil {
			log.Printf("Warning: failed to cache settings: %v", err)
		}
	}
	return settings, nil
}

// Update persists settings changes and drops the cached copy. The document
// is created first if it does not exist yet.
func (s *SettingsService) Update(ctx context.Context, settings *domain.Settings) error {
	current, err := s.Get(ctx)
	if err != nil {
		return err
	}
	settings.ID = current.ID

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateSettings(ctx); err != nil {
			log.Printf("Warning: failed to invalidate settings cache: %v", err)
		}
	}
	return nil
}
