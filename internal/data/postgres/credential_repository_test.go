package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
)

func TestCredentialRepository_GetHash(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &CredentialRepository{querier: mock, logger: logger}

	query := `SELECT password_hash FROM app_credential WHERE id = 1`

	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"password_hash"}).AddRow("$2a$10$abcdef")
		mock.ExpectQuery(query).WillReturnRows(rows)

		hash, err := repo.GetHash(ctx)
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$abcdef", hash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not seeded", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)

		hash, err := repo.GetHash(ctx)
		assert.ErrorIs(t, err, settings.ErrNoCredential)
		assert.Empty(t, hash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mock.ExpectQuery(query).WillReturnError(expectedErr)

		_, err := repo.GetHash(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get credential")
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCredentialRepository_SaveHash(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &CredentialRepository{querier: mock, logger: logger}

	query := `INSERT INTO app_credential`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("$2a$10$newhash").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveHash(ctx, "$2a$10$newhash")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mock.ExpectExec(query).
			WithArgs("$2a$10$newhash").
			WillReturnError(expectedErr)

		err := repo.SaveHash(ctx, "$2a$10$newhash")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save credential")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
