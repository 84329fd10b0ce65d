package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// TransactionType is the kind of wallet movement a transaction records
type TransactionType string

// Transaction types
const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypePurchase   TransactionType = "purchase"
	TypeRefund     TransactionType = "refund"
	TypeAdjustment TransactionType = "adjustment"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusApproved  TransactionStatus = "approved"
	StatusRejected  TransactionStatus = "rejected"
	StatusCompleted TransactionStatus = "completed"
)

// SystemActor is recorded as ProcessedBy when a transaction is approved automatically
const SystemActor uint64 = 0

// Transaction represents a financial movement on a user's wallet
type Transaction struct {
	ID            uint64            // Unique identifier for the transaction
	Reference     string            // Unique external reference, used for idempotency
	UserID        uint64            // Owner of the wallet
	WalletID      uint64            // Wallet the transaction applies to
	Type          TransactionType   // Kind of movement
	AmountInCents int64             // Amount in cents, signed only for adjustments
	FeeInCents    int64             // Fee charged on top of the amount
	Status        TransactionStatus // Current status
	Method        string            // Payment method reported by the user
	Note          string            // Free text from the user or the reviewing admin
	BalanceAfter  int64             // Wallet balance after the transaction was applied
	ProcessedBy   *uint64           // Admin who approved or rejected, SystemActor for automatic approval
	ProcessedAt   *time.Time
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionOption defines a function type for configuring Transaction objects
type TransactionOption func(*Transaction)

// WithStatus sets the initial status of a transaction
func WithStatus(status TransactionStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// WithFee sets the fee of a transaction
func WithFee(cents int64) TransactionOption {
	return func(t *Transaction) {
		t.FeeInCents = cents
	}
}

// WithMethod sets the payment method and note
func WithMethod(method, note string) TransactionOption {
	return func(t *Transaction) {
		t.Method = method
		t.Note = note
	}
}

// WithMetadata attaches metadata to a transaction
func WithMetadata(metadata map[string]any) TransactionOption {
	return func(t *Transaction) {
		t.Metadata = metadata
	}
}

// NewTransaction creates a new pending transaction with basic validation
func NewTransaction(
	userID uint64,
	walletID uint64,
	reference string,
	txType TransactionType,
	amountInCents int64,
	timeProvider coreport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", errs.ErrInvalidRequest)
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if amountInCents == 0 {
		return nil, errs.ErrZeroAmount
	}
	if amountInCents < 0 && txType != TypeAdjustment {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	tx := &Transaction{
		Reference:     reference,
		UserID:        userID,
		WalletID:      walletID,
		Type:          txType,
		AmountInCents: amountInCents,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(tx)
	}
	if tx.FeeInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}
	return tx, nil
}

// IsValidTransactionType reports whether t names a known transaction type
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TypeDeposit, TypeWithdrawal, TypePurchase, TypeRefund, TypeAdjustment:
		return true
	}
	return false
}

// IsValidTransactionStatus reports whether s names a known status
func IsValidTransactionStatus(s string) bool {
	switch TransactionStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Amount returns the amount as a decimal string
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// Fee returns the fee as a decimal string
func (t *Transaction) Fee() string {
	return AmountInCentsToString(t.FeeInCents)
}

// TotalInCents returns amount plus fee, which is what a withdrawal takes from the wallet
func (t *Transaction) TotalInCents() int64 {
	return t.AmountInCents + t.FeeInCents
}

// IsPending reports whether the transaction still awaits review
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// Approve moves a pending transaction to approved
func (t *Transaction) Approve(actor uint64, note string, balanceAfter int64, timeProvider coreport.TimeProvider) error {
	return t.transition(StatusApproved, actor, note, balanceAfter, timeProvider)
}

// Reject moves a pending transaction to rejected
func (t *Transaction) Reject(actor uint64, reason string, balanceAfter int64, timeProvider coreport.TimeProvider) error {
	if reason == "" {
		v := errs.NewValidationError()
		v.Add("reason", "is required")
		return v
	}
	return t.transition(StatusRejected, actor, reason, balanceAfter, timeProvider)
}

// Complete marks a transaction that needs no review as completed
func (t *Transaction) Complete(actor uint64, balanceAfter int64, timeProvider coreport.TimeProvider) error {
	return t.transition(StatusCompleted, actor, "", balanceAfter, timeProvider)
}

func (t *Transaction) transition(to TransactionStatus, actor uint64, note string, balanceAfter int64, timeProvider coreport.TimeProvider) error {
	if t.Status != StatusPending {
		return errs.NewTransactionError(t.Reference, t.UserID, string(t.Type), string(t.Status), t.Amount(),
			fmt.Sprintf("cannot move to %s", to), errs.ErrInvalidStateTransition)
	}
	now := timeProvider.Now()
	t.Status = to
	t.ProcessedBy = &actor
	t.ProcessedAt = &now
	t.UpdatedAt = now
	t.BalanceAfter = balanceAfter
	if note != "" {
		t.Note = note
	}
	return nil
}
