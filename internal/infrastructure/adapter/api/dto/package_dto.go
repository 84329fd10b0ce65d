package dto

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// PackageRequest creates or updates a service package
type PackageRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description" binding:"max=1000"`
	Price        string `json:"price" binding:"required"`
	DurationDays int    `json:"durationDays" binding:"required,min=1"`
	DeviceLimit  int    `json:"deviceLimit" binding:"min=0"`
	Active       *bool  `json:"active"`
}

// PackageResponse represents a catalogue entry
type PackageResponse struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Price        string `json:"price"`
	DurationDays int    `json:"durationDays"`
	DeviceLimit  int    `json:"deviceLimit"`
	Active       bool   `json:"active"`
}

// UserPackageResponse represents a purchased package
type UserPackageResponse struct {
	ID        uint64    `json:"id"`
	PackageID uint64    `json:"packageId"`
	StartsAt  time.Time `json:"startsAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Status    string    `json:"status"`
}

// PurchaseResponse is returned after buying a package
type PurchaseResponse struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Package     UserPackageResponse  `json:"package"`
	Extended    bool                 `json:"extended"`
}

// NewPackageResponse maps a package entity
func NewPackageResponse(p *entity.ServicePackage) PackageResponse {
	return PackageResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price(),
		DurationDays: p.DurationDays,
		DeviceLimit:  p.DeviceLimit,
		Active:       p.Active,
	}
}

// NewUserPackageResponse maps a purchased package
func NewUserPackageResponse(up *entity.UserPackage) UserPackageResponse {
	return UserPackageResponse{
		ID:        up.ID,
		PackageID: up.PackageID,
		StartsAt:  up.StartsAt,
		ExpiresAt: up.ExpiresAt,
		Status:    string(up.Status),
	}
}

// NotificationResponse represents a dashboard notification
type NotificationResponse struct {
	ID        uint64     `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NotificationQuery binds the notification listing
type NotificationQuery struct {
	PageQuery
	UnreadOnly bool `form:"unread"`
}

// NotificationPageResponse is one page of notifications plus the unread count
type NotificationPageResponse struct {
	PageResponse[NotificationResponse]
	Unread int64 `json:"unread"`
}

// NewNotificationResponse maps a notification entity
func NewNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// DeviceResponse represents a device mirrored from the bridge
type DeviceResponse struct {
	ID         uint64     `json:"id"`
	ExternalID string     `json:"externalId"`
	UserID     uint64     `json:"userId"`
	Name       string     `json:"name"`
	Model      string     `json:"model,omitempty"`
	Status     string     `json:"status"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}

// NewDeviceResponses maps devices
func NewDeviceResponses(devices []*entity.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, DeviceResponse{
			ID:         d.ID,
			ExternalID: d.ExternalID,
			UserID:     d.UserID,
			Name:       d.Name,
			Model:      d.Model,
			Status:     string(d.Status),
			LastSeenAt: d.LastSeenAt,
		})
	}
	return out
}
