package usecase

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
)

// MaxPageSize caps every paginated listing
const MaxPageSize = 100

// DepositRequest represents a deposit submitted by a user
type DepositRequest struct {
	Amount    string
	Method    string
	Note      string
	Reference string // optional idempotency key
}

// WithdrawalRequest represents a withdrawal submitted by a user
type WithdrawalRequest struct {
	Amount    string
	Method    string
	Note      string
	Reference string // optional idempotency key
}

// AdjustRequest is an admin credit (positive) or debit (negative)
type AdjustRequest struct {
	Amount string
	Note   string
}

// PurchaseResult is returned after buying a package
type PurchaseResult struct {
	Transaction *entity.Transaction
	UserPackage *entity.UserPackage
	Extended    bool
}

// TransactionPage is one page of transactions
type TransactionPage struct {
	Items    []*entity.Transaction `json:"items"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

// WalletUseCase defines the payment operations on user wallets
type WalletUseCase interface {
	// GetWallet returns the wallet of a user, creating it on first access
	GetWallet(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// RequestDeposit records a deposit, approving it at once when it is under the auto-approve threshold
	RequestDeposit(ctx context.Context, userID uint64, req DepositRequest) (*entity.Transaction, error)

	// RequestWithdrawal holds amount plus fee and records a pending withdrawal
	RequestWithdrawal(ctx context.Context, userID uint64, req WithdrawalRequest) (*entity.Transaction, error)

	// Approve settles a pending deposit or withdrawal
	Approve(ctx context.Context, txID, adminID uint64, note string) (*entity.Transaction, error)

	// Reject cancels a pending deposit or withdrawal, releasing any hold
	Reject(ctx context.Context, txID, adminID uint64, reason string) (*entity.Transaction, error)

	// Adjust credits or debits a wallet on behalf of an admin
	Adjust(ctx context.Context, userID, adminID uint64, req AdjustRequest) (*entity.Transaction, error)

	// PurchasePackage pays for a package from the wallet
	PurchasePackage(ctx context.Context, userID, packageID uint64) (*PurchaseResult, error)

	// ListTransactions lists transactions of one user
	ListTransactions(ctx context.Context, filter persistence.TransactionFilter) (*TransactionPage, error)

	// ListAllTransactions lists transactions across users for admins, served from cache when possible
	ListAllTransactions(ctx context.Context, filter persistence.TransactionFilter) (*TransactionPage, error)
}

// SettingsInput carries withdrawal settings as decimal strings
type SettingsInput struct {
	MinAmount             string
	MaxAmount             string
	FeeBasisPoints        int64
	DailyLimit            string
	DepositAutoApprove    string
	WithdrawalAutoApprove string
	Enabled               bool
}

// SettingsUseCase manages the withdrawal settings row
type SettingsUseCase interface {
	GetSettings(ctx context.Context) (*entity.WithdrawalSetting, error)
	UpdateSettings(ctx context.Context, adminID uint64, in SettingsInput) (*entity.WithdrawalSetting, error)
}
