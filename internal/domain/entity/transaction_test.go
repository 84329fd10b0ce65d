package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(1, 2, "ref-1", TypeWithdrawal, 10000, mockTime,
			WithFee(150), WithMethod("bank", "monthly payout"))

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, uint64(2), tx.WalletID)
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, "100.00", tx.Amount())
		assert.Equal(t, "1.50", tx.Fee())
		assert.Equal(t, int64(10150), tx.TotalInCents())
		assert.Equal(t, "bank", tx.Method)
		assert.Nil(t, tx.ProcessedAt)
	})

	t.Run("With custom status option", func(t *testing.T) {
		tx, err := NewTransaction(1, 2, "ref-2", TypePurchase, 500, mockTime, WithStatus(StatusCompleted))
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, tx.Status)
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name   string
			userID uint64
			ref    string
			txType TransactionType
			amount int64
			want   error
		}{
			{"zero user", 0, "r", TypeDeposit, 1, errs.ErrInvalidUserID},
			{"empty reference", 1, "", TypeDeposit, 1, errs.ErrInvalidRequest},
			{"unknown type", 1, "r", TransactionType("bonus"), 1, errs.ErrInvalidTransactionType},
			{"zero amount", 1, "r", TypeDeposit, 0, errs.ErrZeroAmount},
			{"negative deposit", 1, "r", TypeDeposit, -1, errs.ErrNegativeAmount},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tx, err := NewTransaction(tc.userID, 1, tc.ref, tc.txType, tc.amount, mockTime)
				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, tx)
			})
		}
	})

	t.Run("Negative adjustment allowed", func(t *testing.T) {
		tx, err := NewTransaction(1, 1, "adj", TypeAdjustment, -250, mockTime)
		require.NoError(t, err)
		assert.Equal(t, "-2.50", tx.Amount())
	})
}

func TestTransactionTransitions(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newPending := func(t *testing.T) *Transaction {
		tx, err := NewTransaction(1, 1, "ref", TypeDeposit, 100, mockTime)
		require.NoError(t, err)
		return tx
	}

	t.Run("Approve pending", func(t *testing.T) {
		tx := newPending(t)
		require.NoError(t, tx.Approve(9, "ok", 100, mockTime))
		assert.Equal(t, StatusApproved, tx.Status)
		require.NotNil(t, tx.ProcessedBy)
		assert.Equal(t, uint64(9), *tx.ProcessedBy)
		assert.Equal(t, fixedTime, *tx.ProcessedAt)
		assert.Equal(t, int64(100), tx.BalanceAfter)
		assert.Equal(t, "ok", tx.Note)
	})

	t.Run("Reject requires reason", func(t *testing.T) {
		tx := newPending(t)
		assert.ErrorIs(t, tx.Reject(9, "", 0, mockTime), errs.ErrInvalidRequest)
		assert.Equal(t, StatusPending, tx.Status)

		require.NoError(t, tx.Reject(9, "duplicate receipt", 0, mockTime))
		assert.Equal(t, StatusRejected, tx.Status)
	})

	t.Run("Terminal states cannot move", func(t *testing.T) {
		tx := newPending(t)
		require.NoError(t, tx.Approve(9, "", 100, mockTime))

		assert.ErrorIs(t, tx.Approve(9, "", 100, mockTime), errs.ErrInvalidStateTransition)
		assert.ErrorIs(t, tx.Reject(9, "late", 0, mockTime), errs.ErrInvalidStateTransition)
		assert.ErrorIs(t, tx.Complete(9, 0, mockTime), errs.ErrInvalidStateTransition)
	})

	t.Run("Type and status helpers", func(t *testing.T) {
		assert.True(t, IsValidTransactionType("refund"))
		assert.False(t, IsValidTransactionType("win"))
		assert.True(t, IsValidTransactionStatus("rejected"))
		assert.False(t, IsValidTransactionStatus("failed"))
	})
}
