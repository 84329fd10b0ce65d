package dto

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// WalletResponse represents a user's wallet
type WalletResponse struct {
	UserID    uint64    `json:"userId"`
	Balance   string    `json:"balance"`
	Held      string    `json:"held"`
	Available string    `json:"available"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewWalletResponse maps a wallet entity
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		UserID:    w.UserID,
		Balance:   w.GetBalance(),
		Held:      w.GetHeld(),
		Available: entity.AmountInCentsToString(w.Balance() - w.Held()),
		Currency:  w.Currency,
		UpdatedAt: w.UpdatedAt,
	}
}

// WithdrawalSettingsRequest updates the withdrawal settings. Amounts are decimal strings.
type WithdrawalSettingsRequest struct {
	MinAmount             string `json:"minAmount" binding:"required"`
	MaxAmount             string `json:"maxAmount" binding:"required"`
	FeeBasisPoints        int64  `json:"feeBasisPoints" binding:"min=0,max=10000"`
	DailyLimit            string `json:"dailyLimit"`
	DepositAutoApprove    string `json:"depositAutoApprove"`
	WithdrawalAutoApprove string `json:"withdrawalAutoApprove"`
	Enabled               bool   `json:"enabled"`
}

// WithdrawalSettingsResponse represents the withdrawal settings
type WithdrawalSettingsResponse struct {
	MinAmount             string    `json:"minAmount"`
	MaxAmount             string    `json:"maxAmount"`
	FeeBasisPoints        int64     `json:"feeBasisPoints"`
	DailyLimit            string    `json:"dailyLimit"`
	DepositAutoApprove    string    `json:"depositAutoApprove"`
	WithdrawalAutoApprove string    `json:"withdrawalAutoApprove"`
	Enabled               bool      `json:"enabled"`
	UpdatedBy             uint64    `json:"updatedBy,omitempty"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// NewWithdrawalSettingsResponse maps the settings entity
func NewWithdrawalSettingsResponse(s *entity.WithdrawalSetting) WithdrawalSettingsResponse {
	return WithdrawalSettingsResponse{
		MinAmount:             entity.AmountInCentsToString(s.MinAmountInCents),
		MaxAmount:             entity.AmountInCentsToString(s.MaxAmountInCents),
		FeeBasisPoints:        s.FeeBasisPoints,
		DailyLimit:            entity.AmountInCentsToString(s.DailyLimitInCents),
		DepositAutoApprove:    entity.AmountInCentsToString(s.DepositAutoApproveInCents),
		WithdrawalAutoApprove: entity.AmountInCentsToString(s.WithdrawAutoApproveInCents),
		Enabled:               s.Enabled,
		UpdatedBy:             s.UpdatedBy,
		UpdatedAt:             s.UpdatedAt,
	}
}
