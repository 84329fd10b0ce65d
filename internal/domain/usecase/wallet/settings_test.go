package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mpers "github.com/amirhossein-jamali/agent-console/mocks/port/persistence"
)

func newSettingsService(t *testing.T) (*SettingsService, *mpers.MockWithdrawalSettingRepository) {
	repo := mpers.NewMockWithdrawalSettingRepository(t)
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedTime).Maybe()
	return NewSettingsService(repo, tp, newTestLogger(t)), repo
}

func TestSettingsService_GetSettings(t *testing.T) {
	t.Run("Existing row", func(t *testing.T) {
		svc, repo := newSettingsService(t)
		stored := &entity.WithdrawalSetting{ID: 1, MinAmountInCents: 500, MaxAmountInCents: 1000, Enabled: true}
		repo.On("Get", mock.Anything).Return(stored, nil)

		got, err := svc.GetSettings(context.Background())

		require.NoError(t, err)
		assert.Same(t, stored, got)
	})

	t.Run("Missing row is created with defaults", func(t *testing.T) {
		svc, repo := newSettingsService(t)
		repo.On("Get", mock.Anything).Return(nil, errs.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.WithdrawalSetting")).Return(nil).Once()

		got, err := svc.GetSettings(context.Background())

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultWithdrawalSetting().MinAmountInCents, got.MinAmountInCents)
		assert.True(t, got.Enabled)
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	t.Run("Valid update", func(t *testing.T) {
		svc, repo := newSettingsService(t)
		repo.On("Get", mock.Anything).Return(&entity.WithdrawalSetting{ID: 4}, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(s *entity.WithdrawalSetting) bool {
			return s.ID == 4 && s.MinAmountInCents == 1000 && s.MaxAmountInCents == 50000 && s.UpdatedBy == 2
		})).Return(nil).Once()

		got, err := svc.UpdateSettings(context.Background(), 2, usecase.SettingsInput{
			MinAmount:          "10",
			MaxAmount:          "500.00",
			FeeBasisPoints:     150,
			DepositAutoApprove: "25.50",
			Enabled:            true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2550), got.DepositAutoApproveInCents)
		assert.Equal(t, int64(0), got.DailyLimitInCents)
	})

	t.Run("Min greater than max", func(t *testing.T) {
		svc, repo := newSettingsService(t)
		repo.On("Get", mock.Anything).Return(&entity.WithdrawalSetting{ID: 4}, nil)

		_, err := svc.UpdateSettings(context.Background(), 2, usecase.SettingsInput{MinAmount: "50", MaxAmount: "10"})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Malformed amounts and fee", func(t *testing.T) {
		svc, repo := newSettingsService(t)
		repo.On("Get", mock.Anything).Return(&entity.WithdrawalSetting{ID: 4}, nil)

		_, err := svc.UpdateSettings(context.Background(), 2, usecase.SettingsInput{MinAmount: "abc", MaxAmount: "", FeeBasisPoints: -1})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
