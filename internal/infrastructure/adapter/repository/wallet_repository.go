package repository

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrWalletNotFound, errs.ErrConstraintViolation),
	}
}

func walletToEntity(m *model.Wallet) *entity.Wallet {
	return entity.RestoreWallet(m.ID, m.UserID, m.Balance, m.Held, m.Currency, m.CreatedAt, m.UpdatedAt)
}

// GetByUserID retrieves the wallet of a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var m model.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, r.errors.handle("getting wallet", err, map[string]any{"user_id": userID})
	}
	return walletToEntity(&m), nil
}

// GetByUserIDForUpdate retrieves the wallet with SELECT ... FOR UPDATE
func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var m model.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&m).Error
	if err != nil {
		return nil, r.errors.handle("locking wallet", err, map[string]any{"user_id": userID})
	}

	r.logger.Debug("Wallet row locked", map[string]any{
		"user_id":   userID,
		"wallet_id": m.ID,
	})
	return walletToEntity(&m), nil
}

// Create inserts a wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	m := model.Wallet{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance(),
		Held:      wallet.Held(),
		Currency:  wallet.Currency,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating wallet", err, map[string]any{"user_id": wallet.UserID})
	}
	wallet.ID = m.ID
	return nil
}

// Update saves balance and held amounts
func (r *WalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]any{
			"balance":    wallet.Balance(),
			"held":       wallet.Held(),
			"updated_at": wallet.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating wallet", result.Error, map[string]any{
			"wallet_id": wallet.ID,
			"user_id":   wallet.UserID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}

	r.logger.Debug("Wallet updated", map[string]any{
		"wallet_id": wallet.ID,
		"balance":   wallet.GetBalance(),
		"held":      wallet.GetHeld(),
	})
	return nil
}
