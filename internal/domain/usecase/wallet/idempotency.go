package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
)

// IdempotencyHandler provides idempotency checking for client-supplied references
type IdempotencyHandler struct {
	transactionRepo persistence.TransactionRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(transactionRepo persistence.TransactionRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		transactionRepo: transactionRepo,
	}
}

// CheckIdempotency looks up a transaction by reference.
// A match of the same user and type is returned as a replay. A match of anything else is a duplicate.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	userID uint64,
	txType entity.TransactionType,
	reference string,
) (*entity.Transaction, bool, error) {
	if reference == "" {
		return nil, false, nil
	}

	exists, err := h.transactionRepo.ReferenceExists(ctx, reference)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check if transaction exists: %w", err)
	}
	if !exists {
		return nil, false, nil
	}

	txn, err := h.transactionRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			// Deleted between the two reads, treat it as new
			return nil, false, nil
		}
		return nil, true, fmt.Errorf("failed to retrieve existing transaction: %w", err)
	}

	if txn.UserID != userID || txn.Type != txType {
		return nil, true, errs.NewTransactionError(reference, userID, string(txType), string(txn.Status), txn.Amount(),
			"reference already used", errs.ErrDuplicateTransaction)
	}
	return txn, true, nil
}
