package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// NotificationRepository stores dashboard notifications
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) ([]*entity.Notification, int64, error)

	// MarkRead marks one notification of the user as read
	//
	// Possible errors:
	// - ErrNotFound: If the notification doesn't exist or belongs to another user
	MarkRead(ctx context.Context, userID, id uint64, at time.Time) error
	MarkAllRead(ctx context.Context, userID uint64, at time.Time) (int64, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
}
