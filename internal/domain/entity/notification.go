package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// Notification types
const (
	NotificationWallet  = "wallet"
	NotificationPackage = "package"
	NotificationSystem  = "system"
)

// Notification is a message shown in the user's dashboard
type Notification struct {
	ID        uint64
	UserID    uint64
	Type      string
	Title     string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}

// NewNotification builds an unread notification
func NewNotification(userID uint64, notificationType, title, body string, timeProvider coreport.TimeProvider) (*Notification, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	v := errs.NewValidationError()
	if title == "" {
		v.Add("title", "is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	if notificationType == "" {
		notificationType = NotificationSystem
	}
	return &Notification{
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Body:      body,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsRead reports whether the notification was read
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
