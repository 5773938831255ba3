package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
)

// MinPasswordLength is the minimum length accepted for a new password
const MinPasswordLength = 8

var (
	// ErrInvalidPassword indicates the supplied password does not match the stored credential
	ErrInvalidPassword = errors.New("invalid password")

	// ErrWeakPassword indicates a new password is shorter than MinPasswordLength
	ErrWeakPassword = errors.New("password too short")
)

// AuthServiceImpl implements the AuthService interface
type AuthServiceImpl struct {
	credentialRepo  settings.CredentialRepository
	initialPassword string
	logger          *slog.Logger
}

// NewAuthService creates a new auth service. initialPassword seeds the
// credential store on first start.
func NewAuthService(logger *slog.Logger, credentialRepo settings.CredentialRepository, initialPassword string) AuthService {
	return &AuthServiceImpl{
		credentialRepo:  credentialRepo,
		initialPassword: initialPassword,
		logger:          logger,
	}
}

// Login verifies the password against the stored credential
func (s *AuthServiceImpl) Login(ctx context.Context, password string) error {
	hash, err := s.credentialRepo.GetHash(ctx)
	if err != nil {
		s.logger.Error("Failed to load credential", "error", err)
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidPassword
	}
	return nil
}

// ChangePassword verifies the current password and stores a new one
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, current, next string) error {
	if err := s.Login(ctx, current); err != nil {
		return err
	}

	if len(next) < MinPasswordLength {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.credentialRepo.SaveHash(ctx, string(hash)); err != nil {
		s.logger.Error("Failed to store new credential", "error", err)
		return err
	}

	s.logger.Info("Password changed")
	return nil
}

// EnsureCredential seeds the stored credential from the configured initial
// password when none exists yet. An already seeded credential is left alone.
func (s *AuthServiceImpl) EnsureCredential(ctx context.Context) error {
	_, err := s.credentialRepo.GetHash(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, settings.ErrNoCredential) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash initial password: %w", err)
	}

	if err := s.credentialRepo.SaveHash(ctx, string(hash)); err != nil {
		return err
	}

	s.logger.Info("Seeded initial credential")
	return nil
}
