package settings

import (
	"errors"
	"fmt"
	"time"
)

// Sort keys accepted for the default history ordering
const (
	SortByDate        = "date"
	SortByDescription = "description"
	SortByMinutes     = "minutes"
)

// Date formats the client may render dates in
var dateFormats = map[string]bool{
	"dd.mm.yyyy": true,
	"dd/mm/yyyy": true,
	"mm/dd/yyyy": true,
	"yyyy-mm-dd": true,
}

var roundingSteps = map[int]bool{1: true, 5: true, 10: true, 15: true, 30: true, 60: true}

// Settings holds the user-tunable application configuration. It is loaded at
// startup and persisted on change; the ledger core never reads it implicitly.
type Settings struct {
	WeeklyTargetHours     float64  `json:"weekly_target_hours"`
	MonthlyTargetOverride *float64 `json:"monthly_target_override"`
	WorkDaysPerWeek       int      `json:"work_days_per_week"`
	HourlyRate            float64  `json:"hourly_rate"`
	RoundingMinutes       int      `json:"rounding_minutes"`
	AutoRefreshSeconds    int      `json:"auto_refresh_seconds"`
	DefaultSortKey        string   `json:"default_sort_key"`
	DateFormat            string   `json:"date_format"`
	DarkMode              bool     `json:"dark_mode"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Default returns the settings used before the user saves anything
func Default() Settings {
	return Settings{
		WeeklyTargetHours:  40,
		WorkDaysPerWeek:    5,
		HourlyRate:         0,
		RoundingMinutes:    1,
		AutoRefreshSeconds: 0,
		DefaultSortKey:     SortByDate,
		DateFormat:         "dd.mm.yyyy",
		DarkMode:           false,
	}
}

// Validate checks all field ranges and enums
func (s *Settings) Validate() error {
	if s.WeeklyTargetHours < 1 || s.WeeklyTargetHours > 168 {
		return errors.New("weekly target hours must be between 1 and 168")
	}
	if s.MonthlyTargetOverride != nil && *s.MonthlyTargetOverride < 0 {
		return errors.New("monthly target override must not be negative")
	}
	if s.WorkDaysPerWeek < 1 || s.WorkDaysPerWeek > 7 {
		return errors.New("work days per week must be between 1 and 7")
	}
	if s.HourlyRate < 0 {
		return errors.New("hourly rate must not be negative")
	}
	if !roundingSteps[s.RoundingMinutes] {
		return fmt.Errorf("unsupported rounding step: %d", s.RoundingMinutes)
	}
	if s.AutoRefreshSeconds < 0 {
		return errors.New("auto refresh seconds must not be negative")
	}
	switch s.DefaultSortKey {
	case SortByDate, SortByDescription, SortByMinutes:
	default:
		return fmt.Errorf("unsupported sort key: %q", s.DefaultSortKey)
	}
	if !dateFormats[s.DateFormat] {
		return fmt.Errorf("unsupported date format: %q", s.DateFormat)
	}
	return nil
}
