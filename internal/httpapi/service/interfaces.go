package service

import (
	"context"
	"io"

	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
	"github.com/ueberstunden/overtime-ledger/internal/ledger"
)

// TransactionPatch carries the fields of a partial transaction update.
// Nil fields keep the stored value. Minutes takes precedence over Hours
// when both are set.
type TransactionPatch struct {
	Date        *string
	Kind        *string
	Minutes     *int
	Hours       *float64
	Description *string
}

// TransactionService defines the interface for ledger transaction operations
type TransactionService interface {
	// Create validates and persists a new transaction.
	// Returns a *ledger.ValidationError when the input is rejected.
	Create(ctx context.Context, input ledger.Input) (*transaction.Transaction, error)

	// List retrieves all transactions with their running balance attached,
	// ordered the way the store returns them (date, then insertion)
	List(ctx context.Context) ([]ledger.RunningEntry, error)

	// Balance returns the current total balance in minutes
	Balance(ctx context.Context) (int, error)

	// Update applies a partial update to an existing transaction and
	// re-validates the merged result.
	// Returns transaction.ErrTransactionNotFound if the ID is unknown.
	Update(ctx context.Context, id string, patch TransactionPatch) (*transaction.Transaction, error)

	// Delete removes a transaction by ID.
	// Returns transaction.ErrTransactionNotFound if the ID is unknown.
	Delete(ctx context.Context, id string) error

	// Export renders the CSV export for the given date window
	Export(ctx context.Context, window ledger.ExportRange) (string, error)
}

// ImportSummary reports the outcome of a CSV import
type ImportSummary struct {
	Imported int
	Errors   []ledger.RowError
}

// ImportService defines the interface for CSV batch imports
type ImportService interface {
	// Import parses the CSV payload and persists every valid row.
	// Row failures are collected per row and never abort the batch.
	// Returns ledger.ErrEmptyImport when the payload has no data rows.
	Import(ctx context.Context, r io.Reader) (*ImportSummary, error)
}

// AuthService defines the interface for the password gate
type AuthService interface {
	// Login verifies the password against the stored credential.
	// Returns ErrInvalidPassword on mismatch.
	Login(ctx context.Context, password string) error

	// ChangePassword verifies the current password and stores a new one.
	// Returns ErrInvalidPassword on mismatch and ErrWeakPassword when the
	// new password is too short.
	ChangePassword(ctx context.Context, current, next string) error

	// EnsureCredential seeds the stored credential from the configured
	// initial password when none exists yet
	EnsureCredential(ctx context.Context) error
}

// SettingsService defines the interface for application settings
type SettingsService interface {
	// Get retrieves the current settings, falling back to defaults
	Get(ctx context.Context) (*settings.Settings, error)

	// Update validates and persists new settings.
	// Returns the validation error unchanged when the input is rejected.
	Update(ctx context.Context, s *settings.Settings) error
}
