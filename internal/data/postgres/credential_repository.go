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

// CredentialRepository implements the settings.CredentialRepository interface for PostgreSQL
type CredentialRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewCredentialRepository creates a new PostgreSQL credential repository
func NewCredentialRepository(logger *slog.Logger, db *persistence.PostgresDB) settings.CredentialRepository {
	return &CredentialRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// GetHash returns the stored password hash.
// Returns settings.ErrNoCredential if the row has not been seeded yet.
func (r *CredentialRepository) GetHash(ctx context.Context) (string, error) {
	query := `SELECT password_hash FROM app_credential WHERE id = 1`

	var hash string
	err := r.querier.QueryRow(ctx, query).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", settings.ErrNoCredential
		}
		r.logger.Error("Failed to get credential", "error", err)
		return "", fmt.Errorf("failed to get credential: %w", err)
	}

	return hash, nil
}

// SaveHash upserts the single credential row
func (r *CredentialRepository) SaveHash(ctx context.Context, hash string) error {
	query := `
		INSERT INTO app_credential (id, password_hash, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = now()
	`

	_, err := r.querier.Exec(ctx, query, hash)
	if err != nil {
		r.logger.Error("Failed to save credential", "error", err)
		return fmt.Errorf("failed to save credential: %w", err)
	}

	return nil
}
