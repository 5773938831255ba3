package service

import (
	"context"
	"log/slog"

	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
)

// SettingsServiceImpl implements the SettingsService interface
type SettingsServiceImpl struct {
	settingsRepo settings.Repository
	logger       *slog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(logger *slog.Logger, settingsRepo settings.Repository) SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retrieves the current settings, falling back to defaults
func (s *SettingsServiceImpl) Get(ctx context.Context) (*settings.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load settings", "error", err)
		return nil, err
	}
	return current, nil
}

// Update validates and persists new settings
func (s *SettingsServiceImpl) Update(ctx context.Context, next *settings.Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if err := s.settingsRepo.Save(ctx, next); err != nil {
		s.logger.Error("Failed to save settings", "error", err)
		return err
	}

	s.logger.Info("Settings updated")
	return nil
}
