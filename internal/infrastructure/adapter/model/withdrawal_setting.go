package model

import (
	"time"
)

// WithdrawalSetting is the single row holding wallet limits
type WithdrawalSetting struct {
	ID                         uint64 `gorm:"primaryKey"`
	MinAmountInCents           int64  `gorm:"not null"`
	MaxAmountInCents           int64  `gorm:"not null"`
	FeeBasisPoints             int64  `gorm:"not null"`
	DailyLimitInCents          int64  `gorm:"not null"`
	DepositAutoApproveInCents  int64  `gorm:"not null"`
	WithdrawAutoApproveInCents int64  `gorm:"not null"`
	Enabled                    bool   `gorm:"not null"`
	UpdatedBy                  uint64
	UpdatedAt                  time.Time `gorm:"not null"`
}

// TableName specifies the table name for WithdrawalSetting
func (WithdrawalSetting) TableName() string {
	return "withdrawal_settings"
}
