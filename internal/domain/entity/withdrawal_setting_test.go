package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestWithdrawalSetting(t *testing.T) {
	s := &WithdrawalSetting{
		MinAmountInCents:           1000,
		MaxAmountInCents:           50000,
		FeeBasisPoints:             250,
		DailyLimitInCents:          60000,
		DepositAutoApproveInCents:  5000,
		WithdrawAutoApproveInCents: 0,
		Enabled:                    true,
	}

	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, s.Validate())
		assert.NoError(t, DefaultWithdrawalSetting().Validate())

		bad := *s
		bad.MaxAmountInCents = 10
		bad.FeeBasisPoints = 20000
		assert.ErrorIs(t, bad.Validate(), errs.ErrInvalidRequest)
	})

	t.Run("Bounds", func(t *testing.T) {
		assert.NoError(t, s.CheckWithdrawal(1000))
		assert.NoError(t, s.CheckWithdrawal(50000))
		assert.ErrorIs(t, s.CheckWithdrawal(999), errs.ErrInvalidRequest)
		assert.ErrorIs(t, s.CheckWithdrawal(50001), errs.ErrInvalidRequest)

		disabled := *s
		disabled.Enabled = false
		assert.ErrorIs(t, disabled.CheckWithdrawal(2000), errs.ErrWithdrawalsDisabled)
	})

	t.Run("Fee truncates to cents", func(t *testing.T) {
		assert.Equal(t, int64(250), s.FeeFor(10000))
		assert.Equal(t, int64(0), s.FeeFor(39))
		assert.Equal(t, int64(1), s.FeeFor(79))
	})

	t.Run("Daily limit", func(t *testing.T) {
		assert.True(t, s.WithinDailyLimit(10000, 50000))
		assert.False(t, s.WithinDailyLimit(10001, 50000))

		unlimited := *s
		unlimited.DailyLimitInCents = 0
		assert.True(t, unlimited.WithinDailyLimit(1<<40, 1))
	})

	t.Run("Auto approval thresholds", func(t *testing.T) {
		assert.True(t, s.AutoApproveDeposit(5000))
		assert.False(t, s.AutoApproveDeposit(5001))
		assert.False(t, s.AutoApproveWithdrawal(1))
	})
}
