package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ueberstunden/overtime-ledger/internal/domain/settings"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		stored := settings.Default()
		stored.WeeklyTargetHours = 36
		repo.On("Get", ctx).Return(&stored, nil)

		svc := NewSettingsService(testLogger(), repo)
		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 36.0, got.WeeklyTargetHours)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		expectedErr := errors.New("db down")
		repo.On("Get", ctx).Return(nil, expectedErr)

		svc := NewSettingsService(testLogger(), repo)
		_, err := svc.Get(ctx)
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		next := settings.Default()
		next.RoundingMinutes = 15

		svc := NewSettingsService(testLogger(), repo)
		require.NoError(t, svc.Update(ctx, &next))
		repo.AssertExpectations(t)
	})

	t.Run("InvalidSettingsNeverHitStore", func(t *testing.T) {
		repo := new(MockSettingsRepository)

		next := settings.Default()
		next.RoundingMinutes = 7

		svc := NewSettingsService(testLogger(), repo)
		assert.Error(t, svc.Update(ctx, &next))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		expectedErr := errors.New("db down")
		repo.On("Save", ctx, mock.Anything).Return(expectedErr)

		next := settings.Default()

		svc := NewSettingsService(testLogger(), repo)
		assert.ErrorIs(t, svc.Update(ctx, &next), expectedErr)
	})
}
