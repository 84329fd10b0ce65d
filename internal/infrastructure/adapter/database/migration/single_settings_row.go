package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"gorm.io/gorm"
)

const settingsRowConstraint = "chk_withdrawal_settings_single_row"

// SingleSettingsRow restricts withdrawal_settings to the row with id 1
type SingleSettingsRow struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSingleSettingsRow creates a new migration instance
func NewSingleSettingsRow(db *gorm.DB, logger coreport.Logger) *SingleSettingsRow {
	return &SingleSettingsRow{
		db:     db,
		logger: logger,
	}
}

// Run adds the check constraint unless it already exists
func (m *SingleSettingsRow) Run(ctx context.Context) error {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.table_constraints
		WHERE table_name = 'withdrawal_settings' AND constraint_name = ?`, settingsRowConstraint,
	).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return err
	}
	if count > 0 {
		return nil
	}

	if err := m.db.WithContext(ctx).Exec(
		`DELETE FROM withdrawal_settings WHERE id <> 1`,
	).Error; err != nil {
		return err
	}
	if err := m.db.WithContext(ctx).Exec(
		`ALTER TABLE withdrawal_settings ADD CONSTRAINT ` + settingsRowConstraint + ` CHECK (id = 1)`,
	).Error; err != nil {
		m.logger.Error("Failed to add settings row constraint", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Withdrawal settings limited to a single row", nil)
	return nil
}
