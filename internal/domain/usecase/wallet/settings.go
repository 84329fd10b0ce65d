package wallet

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// SettingsService implements usecase.SettingsUseCase
type SettingsService struct {
	repo         persistence.WithdrawalSettingRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo persistence.WithdrawalSettingRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *SettingsService {
	return &SettingsService{repo: repo, timeProvider: timeProvider, logger: logger}
}

// GetSettings returns the settings row, writing the defaults when it does not exist yet
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.WithdrawalSetting, error) {
	setting, err := s.repo.Get(ctx)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	setting = entity.DefaultWithdrawalSetting()
	setting.UpdatedAt = s.timeProvider.Now()
	if err := s.repo.Save(ctx, setting); err != nil {
		return nil, err
	}
	s.logger.Info("Default withdrawal settings created", nil)
	return setting, nil
}

// UpdateSettings validates and stores new settings
func (s *SettingsService) UpdateSettings(ctx context.Context, adminID uint64, in usecase.SettingsInput) (*entity.WithdrawalSetting, error) {
	if adminID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	v := errs.NewValidationError()
	parse := func(field, value string, required bool) int64 {
		value = strings.TrimSpace(value)
		if value == "" {
			if required {
				v.Add(field, "is required")
			}
			return 0
		}
		cents, err := entity.ValidateAndConvertAmount(value)
		if err != nil {
			v.Add(field, err.Error())
		}
		return cents
	}

	updated := &entity.WithdrawalSetting{
		ID:                         current.ID,
		MinAmountInCents:           parse("minAmount", in.MinAmount, true),
		MaxAmountInCents:           parse("maxAmount", in.MaxAmount, true),
		FeeBasisPoints:             in.FeeBasisPoints,
		DailyLimitInCents:          parse("dailyLimit", in.DailyLimit, false),
		DepositAutoApproveInCents:  parse("depositAutoApprove", in.DepositAutoApprove, false),
		WithdrawAutoApproveInCents: parse("withdrawalAutoApprove", in.WithdrawalAutoApprove, false),
		Enabled:                    in.Enabled,
		UpdatedBy:                  adminID,
		UpdatedAt:                  s.timeProvider.Now(),
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal settings updated", map[string]any{
		"admin_id":         adminID,
		"fee_basis_points": updated.FeeBasisPoints,
		"enabled":          updated.Enabled,
	})
	return updated, nil
}
