package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// NotificationRepository implements NotificationRepository interface using GORM
type NotificationRepository struct {
	db     *gorm.DB
	errors dbErrorHandler
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		errors: newDBErrorHandler(logger, errs.ErrNotFound, errs.ErrConstraintViolation),
	}
}

func notificationToEntity(m *model.Notification) *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		Title:     m.Title,
		Body:      m.Body,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a notification
func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	m := model.Notification{
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating notification", err, map[string]any{"user_id": n.UserID})
	}
	n.ID = m.ID
	return nil
}

// List returns one page of notifications, newest first, and the total count
func (r *NotificationRepository) List(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) ([]*entity.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.errors.handle("counting notifications", err, map[string]any{"user_id": userID})
	}

	offset, limit := pageBounds(page, pageSize)
	var rows []model.Notification
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, r.errors.handle("listing notifications", err, map[string]any{"user_id": userID})
	}

	result := make([]*entity.Notification, 0, len(rows))
	for i := range rows {
		result = append(result, notificationToEntity(&rows[i]))
	}
	return result, total, nil
}

// MarkRead marks one notification of the user as read. Already read rows keep their timestamp.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uint64, at time.Time) error {
	var m model.Notification
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		return r.errors.handle("getting notification", err, map[string]any{"notification_id": id})
	}
	if m.ReadAt != nil {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Update("read_at", at).Error
	if err != nil {
		return r.errors.handle("marking notification read", err, map[string]any{"notification_id": id})
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint64, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", at)
	if result.Error != nil {
		return 0, r.errors.handle("marking notifications read", result.Error, map[string]any{"user_id": userID})
	}
	return result.RowsAffected, nil
}

// CountUnread counts unread notifications of the user
func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, r.errors.handle("counting unread notifications", err, map[string]any{"user_id": userID})
	}
	return count, nil
}
