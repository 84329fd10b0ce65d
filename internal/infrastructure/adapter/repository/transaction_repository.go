package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrTransactionNotFound, errs.ErrDuplicateTransaction),
	}
}

func encodeMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return "{}"
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func decodeMetadata(raw string) map[string]any {
	if raw == "" || raw == "{}" {
		return nil
	}
	var metadata map[string]any
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil
	}
	return metadata
}

// transactionToModel converts a transaction entity to a database model
func transactionToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:            t.ID,
		Reference:     t.Reference,
		UserID:        t.UserID,
		WalletID:      t.WalletID,
		Type:          string(t.Type),
		AmountInCents: t.AmountInCents,
		FeeInCents:    t.FeeInCents,
		Status:        string(t.Status),
		Method:        t.Method,
		Note:          t.Note,
		BalanceAfter:  t.BalanceAfter,
		ProcessedBy:   t.ProcessedBy,
		ProcessedAt:   t.ProcessedAt,
		Metadata:      encodeMetadata(t.Metadata),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Reference:     m.Reference,
		UserID:        m.UserID,
		WalletID:      m.WalletID,
		Type:          entity.TransactionType(m.Type),
		AmountInCents: m.AmountInCents,
		FeeInCents:    m.FeeInCents,
		Status:        entity.TransactionStatus(m.Status),
		Method:        m.Method,
		Note:          m.Note,
		BalanceAfter:  m.BalanceAfter,
		ProcessedBy:   m.ProcessedBy,
		ProcessedAt:   m.ProcessedAt,
		Metadata:      decodeMetadata(m.Metadata),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func txFields(t *entity.Transaction) map[string]any {
	return map[string]any{
		"reference": t.Reference,
		"user_id":   t.UserID,
		"type":      t.Type,
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	m := transactionToModel(transaction)
	if err := r.db.WithContext(ctx).Omit("Wallet").Create(&m).Error; err != nil {
		return r.errors.handle("creating transaction", err, txFields(transaction))
	}
	transaction.ID = m.ID

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": m.ID,
		"reference":      m.Reference,
		"status":         m.Status,
	})
	return nil
}

// Update saves status, balance_after and processing fields
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"status":        string(transaction.Status),
			"balance_after": transaction.BalanceAfter,
			"processed_by":  transaction.ProcessedBy,
			"processed_at":  transaction.ProcessedAt,
			"note":          transaction.Note,
			"metadata":      encodeMetadata(transaction.Metadata),
			"updated_at":    transaction.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating transaction", result.Error, txFields(transaction))
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var m model.Transaction
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.errors.handle("getting transaction", err, map[string]any{"transaction_id": id})
	}
	return transactionToEntity(&m), nil
}

// GetByIDForUpdate retrieves a transaction with SELECT ... FOR UPDATE
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error
	if err != nil {
		return nil, r.errors.handle("locking transaction", err, map[string]any{"transaction_id": id})
	}
	return transactionToEntity(&m), nil
}

// GetByReference retrieves a transaction by its external reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var m model.Transaction
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m).Error; err != nil {
		return nil, r.errors.handle("getting transaction by reference", err, map[string]any{"reference": reference})
	}
	return transactionToEntity(&m), nil
}

// ReferenceExists checks if a transaction with the given reference already exists
func (r *TransactionRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("reference = ?", reference).
		Count(&count).Error
	if err != nil {
		return false, r.errors.handle("checking reference", err, map[string]any{"reference": reference})
	}
	return count > 0, nil
}

// List returns one page of transactions matching filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.errors.handle("counting transactions", err, nil)
	}

	offset, limit := pageBounds(filter.Page, filter.PageSize)
	var rows []model.Transaction
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, r.errors.handle("listing transactions", err, nil)
	}

	result := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, transactionToEntity(&rows[i]))
	}
	return result, total, nil
}

// SumWithdrawalsSince sums pending and approved withdrawal amounts of a user created at or after since
func (r *TransactionRepository) SumWithdrawalsSince(ctx context.Context, userID uint64, since time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Where("user_id = ? AND type = ? AND status IN ? AND created_at >= ?",
			userID,
			string(entity.TypeWithdrawal),
			[]string{string(entity.StatusPending), string(entity.StatusApproved)},
			since,
		).
		Scan(&sum).Error
	if err != nil {
		return 0, r.errors.handle("summing withdrawals", err, map[string]any{"user_id": userID})
	}
	return sum, nil
}
