package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceRepository implements DeviceRepository interface using GORM
type DeviceRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewDeviceRepository creates a new DeviceRepository instance
func NewDeviceRepository(db *gorm.DB, logger coreport.Logger) *DeviceRepository {
	return &DeviceRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrDeviceNotFound, errs.ErrConstraintViolation),
	}
}

func deviceToEntity(m *model.Device) *entity.Device {
	return &entity.Device{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		UserID:     m.UserID,
		Name:       m.Name,
		Model:      m.Model,
		Status:     entity.DeviceStatus(m.Status),
		LastSeenAt: m.LastSeenAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func devicesToEntities(rows []model.Device) []*entity.Device {
	result := make([]*entity.Device, 0, len(rows))
	for i := range rows {
		result = append(result, deviceToEntity(&rows[i]))
	}
	return result
}

// ListByUser returns the devices of a user ordered by name
func (r *DeviceRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Device, error) {
	var rows []model.Device
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name, id").Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing devices", err, map[string]any{"user_id": userID})
	}
	return devicesToEntities(rows), nil
}

// ListAll returns every device
func (r *DeviceRepository) ListAll(ctx context.Context) ([]*entity.Device, error) {
	var rows []model.Device
	if err := r.db.WithContext(ctx).Order("user_id, name, id").Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing all devices", err, nil)
	}
	return devicesToEntities(rows), nil
}

// GetByID retrieves a device
func (r *DeviceRepository) GetByID(ctx context.Context, id uint64) (*entity.Device, error) {
	var m model.Device
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.errors.handle("getting device", err, map[string]any{"device_id": id})
	}
	return deviceToEntity(&m), nil
}

// Upsert inserts or updates a device keyed by its external ID
func (r *DeviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	m := model.Device{
		ExternalID: device.ExternalID,
		UserID:     device.UserID,
		Name:       device.Name,
		Model:      device.Model,
		Status:     string(device.Status),
		LastSeenAt: device.LastSeenAt,
		CreatedAt:  device.CreatedAt,
		UpdatedAt:  device.UpdatedAt,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "name", "model", "status", "last_seen_at", "updated_at"}),
		}).
		Create(&m).Error
	if err != nil {
		return r.errors.handle("upserting device", err, map[string]any{"external_id": device.ExternalID})
	}
	device.ID = m.ID
	return nil
}

// OnlineUserIDs returns the distinct owners of devices not marked offline
func (r *DeviceRepository) OnlineUserIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Device{}).
		Where("status <> ?", string(entity.DeviceOffline)).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, r.errors.handle("listing device owners", err, nil)
	}
	return ids, nil
}

// MarkOfflineExcept sets every device of the user whose external ID is not in keep to offline
func (r *DeviceRepository) MarkOfflineExcept(ctx context.Context, userID uint64, keep []string, at time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Device{}).
		Where("user_id = ? AND status <> ?", userID, string(entity.DeviceOffline))
	if len(keep) > 0 {
		query = query.Where("external_id NOT IN ?", keep)
	}

	result := query.Updates(map[string]any{
		"status":     string(entity.DeviceOffline),
		"updated_at": at,
	})
	if result.Error != nil {
		return 0, r.errors.handle("marking devices offline", result.Error, map[string]any{"user_id": userID})
	}
	if result.RowsAffected > 0 {
		r.logger.Debug("Devices marked offline", map[string]any{
			"user_id": userID,
			"count":   result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
