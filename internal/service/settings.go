package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/repository"
)

// SettingsService manages the origin settings.
type SettingsService interface {
	// Get returns nil, nil when no settings have been saved.
	Get(ctx context.Context) (*model.OriginSettings, error)
	Save(ctx context.Context, settings model.OriginSettings) (*model.OriginSettings, error)
	SetTheme(ctx context.Context, theme string) (*model.OriginSettings, error)
}

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	store repository.SettingsStore
	now   func() time.Time
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store repository.SettingsStore) SettingsService {
	return &SettingsServiceImpl{store: store, now: time.Now}
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*model.OriginSettings, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.store.Get(ctx)
}

// Save validates and stores settings. A nil theme keeps the stored theme.
func (s *SettingsServiceImpl) Save(ctx context.Context, settings model.OriginSettings) (*model.OriginSettings, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}

	settings.Postcode = strings.TrimSpace(settings.Postcode)
	settings.Suburb = strings.TrimSpace(settings.Suburb)
	settings.State = strings.TrimSpace(settings.State)
	settings.Country = strings.TrimSpace(settings.Country)

	switch {
	case settings.Postcode == "":
		return nil, invalid("Postcode is required")
	case !model.IsValidPostcode(settings.Postcode):
		return nil, invalid("Postcode must be 4 digits")
	case settings.Suburb == "":
		return nil, invalid("Suburb is required")
	case settings.State == "":
		return nil, invalid("State is required")
	case settings.Country == "":
		return nil, invalid("Country is required")
	}

	if settings.ThemePreference != nil {
		theme, err := normalizeTheme(*settings.ThemePreference)
		if err != nil {
			return nil, err
		}
		settings.ThemePreference = &theme
	} else {
		existing, err := s.store.Get(ctx)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			settings.ThemePreference = existing.ThemePreference
		}
	}

	now := s.now().UTC()
	settings.UpdatedAt = &now
	if err := s.store.Save(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetTheme changes only the theme of the saved settings.
func (s *SettingsServiceImpl) SetTheme(ctx context.Context, theme string) (*model.OriginSettings, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	normalized, err := normalizeTheme(theme)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, &NotFoundError{Message: "Origin settings not found"}
	}

	now := s.now().UTC()
	settings.ThemePreference = &normalized
	settings.UpdatedAt = &now
	if err := s.store.Save(ctx, *settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func normalizeTheme(theme string) (string, error) {
	if !model.IsValidTheme(theme) {
		return "", invalid("Theme preference must be dark, light, or sepia")
	}
	return strings.ToLower(strings.TrimSpace(theme)), nil
}
