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

// settingsRowID is the primary key of the only settings row
const settingsRowID = 1

// WithdrawalSettingRepository implements WithdrawalSettingRepository interface using GORM
type WithdrawalSettingRepository struct {
	db     *gorm.DB
	errors dbErrorHandler
}

// NewWithdrawalSettingRepository creates a new WithdrawalSettingRepository instance
func NewWithdrawalSettingRepository(db *gorm.DB, logger coreport.Logger) *WithdrawalSettingRepository {
	return &WithdrawalSettingRepository{
		db:     db,
		errors: newDBErrorHandler(logger, errs.ErrNotFound, errs.ErrConstraintViolation),
	}
}

// Get returns the settings row
func (r *WithdrawalSettingRepository) Get(ctx context.Context) (*entity.WithdrawalSetting, error) {
	var m model.WithdrawalSetting
	if err := r.db.WithContext(ctx).First(&m, settingsRowID).Error; err != nil {
		return nil, r.errors.handle("getting withdrawal settings", err, nil)
	}
	return &entity.WithdrawalSetting{
		ID:                         m.ID,
		MinAmountInCents:           m.MinAmountInCents,
		MaxAmountInCents:           m.MaxAmountInCents,
		FeeBasisPoints:             m.FeeBasisPoints,
		DailyLimitInCents:          m.DailyLimitInCents,
		DepositAutoApproveInCents:  m.DepositAutoApproveInCents,
		WithdrawAutoApproveInCents: m.WithdrawAutoApproveInCents,
		Enabled:                    m.Enabled,
		UpdatedBy:                  m.UpdatedBy,
		UpdatedAt:                  m.UpdatedAt,
	}, nil
}

// Save upserts the settings row
func (r *WithdrawalSettingRepository) Save(ctx context.Context, s *entity.WithdrawalSetting) error {
	m := model.WithdrawalSetting{
		ID:                         settingsRowID,
		MinAmountInCents:           s.MinAmountInCents,
		MaxAmountInCents:           s.MaxAmountInCents,
		FeeBasisPoints:             s.FeeBasisPoints,
		DailyLimitInCents:          s.DailyLimitInCents,
		DepositAutoApproveInCents:  s.DepositAutoApproveInCents,
		WithdrawAutoApproveInCents: s.WithdrawAutoApproveInCents,
		Enabled:                    s.Enabled,
		UpdatedBy:                  s.UpdatedBy,
		UpdatedAt:                  s.UpdatedAt,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
	if err != nil {
		return r.errors.handle("saving withdrawal settings", err, nil)
	}
	s.ID = m.ID
	return nil
}
