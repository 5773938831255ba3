package handler

import (
	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
	"github.com/ueberstunden/overtime-ledger/internal/ledger"
)

// CreateTransactionRequest represents a request to create a new transaction.
// Duration may arrive as canonical minutes or as decimal hours; field-level
// validation happens in the ledger core so the error codes stay uniform
// across the API and the CSV import.
type CreateTransactionRequest struct {
	Date        string   `json:"date"`
	Kind        string   `json:"kind"`
	Minutes     *int     `json:"minutes"`
	Hours       *float64 `json:"hours"`
	Description string   `json:"description"`
}

// UpdateTransactionRequest represents a partial update; nil fields keep the
// stored value
type UpdateTransactionRequest struct {
	Date        *string  `json:"date"`
	Kind        *string  `json:"kind"`
	Minutes     *int     `json:"minutes"`
	Hours       *float64 `json:"hours"`
	Description *string  `json:"description"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                    string  `json:"id"`
	Date                  string  `json:"date"`
	Kind                  string  `json:"kind"`
	Minutes               int     `json:"minutes"`
	Hours                 float64 `json:"hours"`
	Description           string  `json:"description"`
	CreatedAt             string  `json:"created_at"`
	RunningBalanceMinutes *int    `json:"running_balance_minutes,omitempty"`
}

// TransactionListResponse represents a list of transactions in API responses
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// BalanceResponse represents the current ledger balance
type BalanceResponse struct {
	BalanceMinutes int     `json:"balance_minutes"`
	BalanceHours   float64 `json:"balance_hours"`
}

// ImportResponse reports the outcome of a CSV import
type ImportResponse struct {
	ImportedCount int               `json:"imported_count"`
	Errors        []ledger.RowError `json:"errors"`
}

// LoginRequest carries the password for the session gate
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// StatusResponse reports whether the caller holds a live session
type StatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// SettingsPayload represents application settings in API requests and responses
type SettingsPayload struct {
	WeeklyTargetHours     float64  `json:"weekly_target_hours"`
	MonthlyTargetOverride *float64 `json:"monthly_target_override"`
	WorkDaysPerWeek       int      `json:"work_days_per_week"`
	HourlyRate            float64  `json:"hourly_rate"`
	RoundingMinutes       int      `json:"rounding_minutes"`
	AutoRefreshSeconds    int      `json:"auto_refresh_seconds"`
	DefaultSortKey        string   `json:"default_sort_key"`
	DateFormat            string   `json:"date_format"`
	DarkMode              bool     `json:"dark_mode"`
}

func mapTransactionToResponse(tx *transaction.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Kind:        string(tx.Kind),
		Minutes:     tx.Minutes,
		Hours:       ledger.HoursFromMinutes(tx.Minutes),
		Description: tx.Description,
	}
	if !tx.CreatedAt.IsZero() {
		resp.CreatedAt = tx.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

func mapRunningEntryToResponse(entry ledger.RunningEntry) TransactionResponse {
	resp := mapTransactionToResponse(entry.Transaction)
	running := entry.RunningMinutes
	resp.RunningBalanceMinutes = &running
	return resp
}

func mapSettingsToPayload(s *settings.Settings) SettingsPayload {
	return SettingsPayload{
		WeeklyTargetHours:     s.WeeklyTargetHours,
		MonthlyTargetOverride: s.MonthlyTargetOverride,
		WorkDaysPerWeek:       s.WorkDaysPerWeek,
		HourlyRate:            s.HourlyRate,
		RoundingMinutes:       s.RoundingMinutes,
		AutoRefreshSeconds:    s.AutoRefreshSeconds,
		DefaultSortKey:        s.DefaultSortKey,
		DateFormat:            s.DateFormat,
		DarkMode:              s.DarkMode,
	}
}

func mapPayloadToSettings(p SettingsPayload) settings.Settings {
	return settings.Settings{
		WeeklyTargetHours:     p.WeeklyTargetHours,
		MonthlyTargetOverride: p.MonthlyTargetOverride,
		WorkDaysPerWeek:       p.WorkDaysPerWeek,
		HourlyRate:            p.HourlyRate,
		RoundingMinutes:       p.RoundingMinutes,
		AutoRefreshSeconds:    p.AutoRefreshSeconds,
		DefaultSortKey:        p.DefaultSortKey,
		DateFormat:            p.DateFormat,
		DarkMode:              p.DarkMode,
	}
}
