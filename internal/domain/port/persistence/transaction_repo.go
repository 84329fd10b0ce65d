package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// TransactionFilter narrows transaction listings. Zero values mean no constraint.
type TransactionFilter struct {
	UserID   uint64
	Type     entity.TransactionType
	Status   entity.TransactionStatus
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If transaction with the same reference already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update saves status, balance_after and processing fields
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction doesn't exist
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByIDForUpdate retrieves a transaction and locks its row. Must be called inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByReference retrieves a transaction by its external reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the reference
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// ReferenceExists checks if a transaction with the given reference already exists.
	// Used for idempotency checking.
	ReferenceExists(ctx context.Context, reference string) (bool, error)

	// List returns one page of transactions matching filter and the total count
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	// SumWithdrawalsSince sums pending and approved withdrawal amounts of a user created at or after since
	SumWithdrawalsSince(ctx context.Context, userID uint64, since time.Time) (int64, error)
}
