package settings

import (
	"context"
	"errors"
)

// ErrNoCredential indicates the credential row has not been seeded yet
var ErrNoCredential = errors.New("no credential stored")

// Repository manages the single persisted settings row
type Repository interface {
	// Get returns the stored settings, or Default() if none were saved yet
	Get(ctx context.Context) (*Settings, error)
	// Save upserts the settings row
	Save(ctx context.Context, s *Settings) error
}

// CredentialRepository manages the single password hash protecting the app
type CredentialRepository interface {
	// GetHash returns the stored bcrypt hash, or ErrNoCredential
	GetHash(ctx context.Context) (string, error)
	// SaveHash upserts the credential row
	SaveHash(ctx context.Context, hash string) error
}
