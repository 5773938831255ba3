package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMigrations_InputValidation(t *testing.T) {
	t.Run("EmptyMigrationsPath", func(t *testing.T) {
		err := RunMigrations("postgres://localhost:5432/ueberstunden", "")
		assert.EqualError(t, err, "migrations path cannot be empty")
	})

	t.Run("EmptyDatabaseURL", func(t *testing.T) {
		err := RunMigrations("", "migrations/postgres")
		assert.EqualError(t, err, "database URL cannot be empty")
	})

	t.Run("InvalidDatabaseURL", func(t *testing.T) {
		err := RunMigrations("not-a-url", "migrations/postgres")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create migrate instance")
	})
}
