package persistence

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// WithdrawalSettingRepository stores the single settings row
type WithdrawalSettingRepository interface {
	// Get returns the settings row
	//
	// Possible errors:
	// - ErrNotFound: If the row was never written
	Get(ctx context.Context) (*entity.WithdrawalSetting, error)

	// Save inserts or updates the settings row
	Save(ctx context.Context, s *entity.WithdrawalSetting) error
}
