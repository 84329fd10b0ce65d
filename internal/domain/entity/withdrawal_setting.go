package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
)

// WithdrawalSetting holds the global wallet limits. A single row exists.
type WithdrawalSetting struct {
	ID                         uint64
	MinAmountInCents           int64
	MaxAmountInCents           int64
	FeeBasisPoints             int64
	DailyLimitInCents          int64 // 0 disables the daily limit
	DepositAutoApproveInCents  int64 // 0 disables automatic deposit approval
	WithdrawAutoApproveInCents int64 // 0 disables automatic withdrawal approval
	Enabled                    bool
	UpdatedBy                  uint64
	UpdatedAt                  time.Time
}

// DefaultWithdrawalSetting is used when no row exists yet
func DefaultWithdrawalSetting() *WithdrawalSetting {
	return &WithdrawalSetting{
		MinAmountInCents:  1000,
		MaxAmountInCents:  100000000,
		FeeBasisPoints:    0,
		DailyLimitInCents: 0,
		Enabled:           true,
	}
}

// Validate checks the setting ranges
func (s *WithdrawalSetting) Validate() error {
	v := errs.NewValidationError()
	if s.MinAmountInCents <= 0 {
		v.Add("minAmount", "must be positive")
	}
	if s.MaxAmountInCents < s.MinAmountInCents {
		v.Add("maxAmount", "must be greater than or equal to minAmount")
	}
	if s.FeeBasisPoints < 0 || s.FeeBasisPoints > BasisPointsScale {
		v.Add("feeBasisPoints", "must be between 0 and 10000")
	}
	if s.DailyLimitInCents < 0 {
		v.Add("dailyLimit", "must not be negative")
	}
	if s.DepositAutoApproveInCents < 0 {
		v.Add("depositAutoApprove", "must not be negative")
	}
	if s.WithdrawAutoApproveInCents < 0 {
		v.Add("withdrawalAutoApprove", "must not be negative")
	}
	return v.OrNil()
}

// CheckWithdrawal verifies amount against enabled flag and min/max bounds
func (s *WithdrawalSetting) CheckWithdrawal(amountInCents int64) error {
	if !s.Enabled {
		return errs.ErrWithdrawalsDisabled
	}
	if amountInCents < s.MinAmountInCents || amountInCents > s.MaxAmountInCents {
		v := errs.NewValidationError()
		v.Add("amount", "must be between "+AmountInCentsToString(s.MinAmountInCents)+" and "+AmountInCentsToString(s.MaxAmountInCents))
		return v
	}
	return nil
}

// FeeFor returns the fee charged on a withdrawal of amountInCents
func (s *WithdrawalSetting) FeeFor(amountInCents int64) int64 {
	return FeeForAmount(amountInCents, s.FeeBasisPoints)
}

// WithinDailyLimit reports whether withdrawing amount after alreadyToday stays within the daily limit
func (s *WithdrawalSetting) WithinDailyLimit(alreadyToday, amountInCents int64) bool {
	if s.DailyLimitInCents <= 0 {
		return true
	}
	return alreadyToday+amountInCents <= s.DailyLimitInCents
}

// AutoApproveDeposit reports whether a deposit of amount skips review
func (s *WithdrawalSetting) AutoApproveDeposit(amountInCents int64) bool {
	return s.DepositAutoApproveInCents > 0 && amountInCents <= s.DepositAutoApproveInCents
}

// AutoApproveWithdrawal reports whether a withdrawal of amount skips review
func (s *WithdrawalSetting) AutoApproveWithdrawal(amountInCents int64) bool {
	return s.WithdrawAutoApproveInCents > 0 && amountInCents <= s.WithdrawAutoApproveInCents
}
