package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// DefaultCurrency is used when a wallet is created without one
const DefaultCurrency = "USD"

// Wallet holds the spendable balance of a user and the amount held for pending withdrawals.
// Both values are kept in cents and never drop below zero.
type Wallet struct {
	ID        uint64
	UserID    uint64
	balance   int64
	held      int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for a user
func NewWallet(userID uint64, currency string, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreWallet rebuilds a wallet from stored values
func RestoreWallet(id, userID uint64, balance, held int64, currency string, createdAt, updatedAt time.Time) *Wallet {
	return &Wallet{
		ID:        id,
		UserID:    userID,
		balance:   balance,
		held:      held,
		Currency:  currency,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Balance returns the spendable balance in cents
func (w *Wallet) Balance() int64 {
	return w.balance
}

// Held returns the cents reserved for pending withdrawals
func (w *Wallet) Held() int64 {
	return w.held
}

// GetBalance returns the balance formatted as a decimal string
func (w *Wallet) GetBalance() string {
	return AmountInCentsToString(w.balance)
}

// GetHeld returns the held amount formatted as a decimal string
func (w *Wallet) GetHeld() string {
	return AmountInCentsToString(w.held)
}

// Credit adds cents to the balance
func (w *Wallet) Credit(cents int64, timeProvider coreport.TimeProvider) error {
	if cents <= 0 {
		return errs.ErrZeroAmount
	}
	if w.balance > math.MaxInt64-cents {
		return errs.ErrAmountOverflow
	}
	w.balance += cents
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit removes cents from the balance
func (w *Wallet) Debit(cents int64, timeProvider coreport.TimeProvider) error {
	if cents <= 0 {
		return errs.ErrZeroAmount
	}
	if w.balance < cents {
		return errs.NewInsufficientBalanceError(w.UserID, AmountInCentsToString(cents), w.GetBalance())
	}
	w.balance -= cents
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Hold moves cents from the balance into the held bucket
func (w *Wallet) Hold(cents int64, timeProvider coreport.TimeProvider) error {
	if err := w.Debit(cents, timeProvider); err != nil {
		return err
	}
	w.held += cents
	return nil
}

// ReleaseHold returns held cents to the balance
func (w *Wallet) ReleaseHold(cents int64, timeProvider coreport.TimeProvider) error {
	if cents <= 0 {
		return errs.ErrZeroAmount
	}
	if w.held < cents {
		return &errs.BalanceError{
			UserID:         w.UserID,
			Amount:         AmountInCentsToString(cents),
			CurrentBalance: w.GetHeld(),
			Err:            errs.ErrInsufficientBalance,
		}
	}
	w.held -= cents
	w.balance += cents
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// SettleHold drops held cents once the money has left the system
func (w *Wallet) SettleHold(cents int64, timeProvider coreport.TimeProvider) error {
	if cents <= 0 {
		return errs.ErrZeroAmount
	}
	if w.held < cents {
		return &errs.BalanceError{
			UserID:         w.UserID,
			Amount:         AmountInCentsToString(cents),
			CurrentBalance: w.GetHeld(),
			Err:            errs.ErrInsufficientBalance,
		}
	}
	w.held -= cents
	w.UpdatedAt = timeProvider.Now()
	return nil
}
