// Package postgres provides PostgreSQL implementations of the settings and
// credential repositories. Both entities are single-row tables seeded on
// first startup.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
	"github.com/ueberstunden/overtime-ledger/internal/platform/persistence"
)

// SettingsRepository implements the settings.Repository interface for PostgreSQL
type SettingsRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewSettingsRepository creates a new PostgreSQL settings repository
func NewSettingsRepository(logger *slog.Logger, db *persistence.PostgresDB) settings.Repository {
	return &SettingsRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Get returns the stored settings row, or the defaults if nothing was saved yet
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	query := `
		SELECT weekly_target_hours, monthly_target_override, work_days_per_week, hourly_rate,
		       rounding_minutes, auto_refresh_seconds, default_sort_key, date_format, dark_mode, updated_at
		FROM app_settings
		WHERE id = 1
	`

	var s settings.Settings
	err := r.querier.QueryRow(ctx, query).Scan(
		&s.WeeklyTargetHours,
		&s.MonthlyTargetOverride,
		&s.WorkDaysPerWeek,
		&s.HourlyRate,
		&s.RoundingMinutes,
		&s.AutoRefreshSeconds,
		&s.DefaultSortKey,
		&s.DateFormat,
		&s.DarkMode,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := settings.Default()
			return &defaults, nil
		}
		r.logger.Error("Failed to get settings", "error", err)
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &s, nil
}

// Save upserts the single settings row
func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	query := `
		INSERT INTO app_settings (id, weekly_target_hours, monthly_target_override, work_days_per_week, hourly_rate,
		                          rounding_minutes, auto_refresh_seconds, default_sort_key, date_format, dark_mode, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (id) DO UPDATE SET
			weekly_target_hours = EXCLUDED.weekly_target_hours,
			monthly_target_override = EXCLUDED.monthly_target_override,
			work_days_per_week = EXCLUDED.work_days_per_week,
			hourly_rate = EXCLUDED.hourly_rate,
			rounding_minutes = EXCLUDED.rounding_minutes,
			auto_refresh_seconds = EXCLUDED.auto_refresh_seconds,
			default_sort_key = EXCLUDED.default_sort_key,
			date_format = EXCLUDED.date_format,
			dark_mode = EXCLUDED.dark_mode,
			updated_at = now()
	`

	_, err := r.querier.Exec(ctx, query,
		s.WeeklyTargetHours,
		s.MonthlyTargetOverride,
		s.WorkDaysPerWeek,
		s.HourlyRate,
		s.RoundingMinutes,
		s.AutoRefreshSeconds,
		s.DefaultSortKey,
		s.DateFormat,
		s.DarkMode,
	)
	if err != nil {
		r.logger.Error("Failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
