package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletOperations(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("New wallet defaults", func(t *testing.T) {
		w, err := NewWallet(1, "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, w.Currency)
		assert.Equal(t, int64(0), w.Balance())
		assert.Equal(t, "0.00", w.GetBalance())
	})

	t.Run("Zero user rejected", func(t *testing.T) {
		_, err := NewWallet(0, "USD", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Credit and debit", func(t *testing.T) {
		w := RestoreWallet(1, 7, 1000, 0, "USD", fixedTime, fixedTime)

		require.NoError(t, w.Credit(550, mockTime))
		assert.Equal(t, int64(1550), w.Balance())

		require.NoError(t, w.Debit(1550, mockTime))
		assert.Equal(t, int64(0), w.Balance())

		err := w.Debit(1, mockTime)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(0), w.Balance())
	})

	t.Run("Non-positive amounts rejected", func(t *testing.T) {
		w := RestoreWallet(1, 7, 1000, 0, "USD", fixedTime, fixedTime)
		assert.ErrorIs(t, w.Credit(0, mockTime), errs.ErrZeroAmount)
		assert.ErrorIs(t, w.Debit(-5, mockTime), errs.ErrZeroAmount)
		assert.ErrorIs(t, w.Hold(0, mockTime), errs.ErrZeroAmount)
	})

	t.Run("Hold release and settle", func(t *testing.T) {
		w := RestoreWallet(1, 7, 10000, 0, "USD", fixedTime, fixedTime)

		require.NoError(t, w.Hold(3000, mockTime))
		assert.Equal(t, int64(7000), w.Balance())
		assert.Equal(t, int64(3000), w.Held())

		require.NoError(t, w.ReleaseHold(1000, mockTime))
		assert.Equal(t, int64(8000), w.Balance())
		assert.Equal(t, int64(2000), w.Held())

		require.NoError(t, w.SettleHold(2000, mockTime))
		assert.Equal(t, int64(8000), w.Balance())
		assert.Equal(t, int64(0), w.Held())

		assert.ErrorIs(t, w.SettleHold(1, mockTime), errs.ErrInsufficientBalance)
		assert.ErrorIs(t, w.ReleaseHold(1, mockTime), errs.ErrInsufficientBalance)
	})

	t.Run("Hold larger than balance", func(t *testing.T) {
		w := RestoreWallet(1, 7, 100, 0, "USD", fixedTime, fixedTime)
		assert.ErrorIs(t, w.Hold(101, mockTime), errs.ErrInsufficientBalance)
		assert.Equal(t, int64(100), w.Balance())
		assert.Equal(t, int64(0), w.Held())
	})

	t.Run("Overflow protection", func(t *testing.T) {
		w := RestoreWallet(1, 7, 9223372036854775800, 0, "USD", fixedTime, fixedTime)
		assert.ErrorIs(t, w.Credit(100, mockTime), errs.ErrAmountOverflow)
	})
}
