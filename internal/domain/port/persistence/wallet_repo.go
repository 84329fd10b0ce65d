package persistence

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// WalletRepository stores one wallet per user
type WalletRepository interface {
	// GetByUserID retrieves the wallet of a user
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet yet
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// GetByUserIDForUpdate retrieves the wallet and locks its row until the surrounding transaction ends.
	// Must be called inside a unit of work.
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet yet
	// - ErrWalletBusy: If the row lock could not be obtained in time
	GetByUserIDForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// Create inserts a wallet and sets its ID
	Create(ctx context.Context, wallet *entity.Wallet) error

	// Update saves balance and held amounts
	Update(ctx context.Context, wallet *entity.Wallet) error
}
