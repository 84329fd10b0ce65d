package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the newest version known to this binary
const CurrentSchemaVersion = "1.2.0"

// step is one versioned schema change
type step struct {
	version     string
	description string
	run         func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager applies versioned schema changes and records them in migration_versions
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	indexes := NewAdvancedIndexManager(db, logger)
	m.steps = []step{
		{version: "1.0.0", description: "Base schema", run: m.autoMigrateModels},
		{version: "1.1.0", description: "Partial and BRIN indexes", run: func(ctx context.Context, _ *gorm.DB) error {
			if err := indexes.CreateAdvancedIndexes(ctx); err != nil {
				return err
			}
			indexes.CreatePerformanceTweaks(ctx)
			return nil
		}},
		{version: "1.2.0", description: "Single withdrawal settings row", run: func(ctx context.Context, db *gorm.DB) error {
			return NewSingleSettingsRow(db, logger).Run(ctx)
		}},
	}
	return m
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{"error": err.Error()})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied schema versions", map[string]any{"error": err.Error()})
		return err
	}

	for _, s := range m.steps {
		if applied[s.version] {
			continue
		}

		m.logger.Info("Applying schema version", map[string]any{
			"version":     s.version,
			"description": s.description,
		})
		if err := s.run(ctx, m.db.WithContext(ctx)); err != nil {
			m.logger.Error("Schema migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.description); err != nil {
			return err
		}
	}

	m.logger.Info("Database migrations completed", map[string]any{"version": CurrentSchemaVersion})
	return nil
}

// GetCurrentVersion returns the newest applied version, or an empty string
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return "", err
	}
	current := ""
	for _, s := range m.steps {
		if applied[s.version] {
			current = s.version
		}
	}
	return current, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// autoMigrateModels creates or updates every table
func (m *MigrationManager) autoMigrateModels(ctx context.Context, db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Wallet{},
		&model.Transaction{},
		&model.WithdrawalSetting{},
		&model.ServicePackage{},
		&model.UserPackage{},
		&model.Notification{},
		&model.Device{},
		&model.DataCollection{},
		&model.DataCollectionItem{},
		&model.ChatSession{},
		&model.ChatMessage{},
	)
}
