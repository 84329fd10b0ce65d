package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes GORM tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// admin review queue
		name: "idx_transactions_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_pending
			ON transactions (created_at)
			WHERE status = 'pending'`,
	},
	{
		// daily withdrawal limit sums
		name: "idx_transactions_withdrawal_window",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_withdrawal_window
			ON transactions (user_id, created_at)
			WHERE type = 'withdrawal' AND status IN ('pending', 'approved')`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_user_packages_one_active",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_user_packages_one_active
			ON user_packages (user_id, package_id)
			WHERE status = 'active'`,
	},
	{
		name: "idx_notifications_unread",
		sql: `CREATE INDEX IF NOT EXISTS idx_notifications_unread
			ON notifications (user_id)
			WHERE read_at IS NULL`,
	},
	{
		name: "idx_chat_messages_session_order",
		sql: `CREATE INDEX IF NOT EXISTS idx_chat_messages_session_order
			ON chat_messages (session_id, id)`,
	},
}

// CreateAdvancedIndexes creates partial, unique and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	m.logger.Info("Advanced PostgreSQL indexes created", map[string]any{"count": len(advancedIndexes)})
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	tweaks := []string{
		// wallets are updated in place on every movement
		`ALTER TABLE wallets SET (fillfactor = 80)`,
		`ALTER TABLE transactions SET (fillfactor = 90)`,
		`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
