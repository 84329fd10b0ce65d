package usecase

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// PackageInput carries package fields from the admin panel
type PackageInput struct {
	Name         string
	Description  string
	Price        string
	DurationDays int
	DeviceLimit  int
	Active       *bool
}

// PackageUseCase manages the package catalogue and purchased packages
type PackageUseCase interface {
	ListActive(ctx context.Context) ([]*entity.ServicePackage, error)
	MyPackages(ctx context.Context, userID uint64) ([]*entity.UserPackage, error)
	Create(ctx context.Context, in PackageInput) (*entity.ServicePackage, error)
	Update(ctx context.Context, id uint64, in PackageInput) (*entity.ServicePackage, error)
	SetActive(ctx context.Context, id uint64, active bool) (*entity.ServicePackage, error)

	// ExpireDue marks purchased packages past their expiry as expired
	ExpireDue(ctx context.Context) (int64, error)

	// EnsureDefaults creates the starter catalogue when it is empty
	EnsureDefaults(ctx context.Context) error
}

// NotificationPage is one page of notifications
type NotificationPage struct {
	Items    []*entity.Notification
	Total    int64
	Unread   int64
	Page     int
	PageSize int
}

// NotificationUseCase delivers dashboard notifications
type NotificationUseCase interface {
	Notify(ctx context.Context, userID uint64, notificationType, title, body string) error
	List(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) (*NotificationPage, error)
	MarkRead(ctx context.Context, userID, id uint64) error
	MarkAllRead(ctx context.Context, userID uint64) (int64, error)
}

// CollectionItemInput is one key/value pair to store
type CollectionItemInput struct {
	Key   string
	Value string
}

// CollectionUseCase manages user data collections
type CollectionUseCase interface {
	ListCollections(ctx context.Context, userID uint64) ([]*entity.UserDataCollection, error)
	GetCollection(ctx context.Context, userID, id uint64) (*entity.UserDataCollection, error)
	SaveCollection(ctx context.Context, userID uint64, name, source string, items []CollectionItemInput) (*entity.UserDataCollection, error)
	DeleteCollection(ctx context.Context, userID, id uint64) error
}

// DeviceUseCase mirrors bridge devices into the database
type DeviceUseCase interface {
	SyncUserDevices(ctx context.Context, userID uint64) ([]*entity.Device, error)
	ListDevices(ctx context.Context, userID uint64) ([]*entity.Device, error)
	ListAll(ctx context.Context) ([]*entity.Device, error)

	// GetUserDevice returns a device owned by userID or ErrDeviceNotFound
	GetUserDevice(ctx context.Context, userID, deviceID uint64) (*entity.Device, error)

	// SyncAll refreshes every device known to the bridge
	SyncAll(ctx context.Context) error
}
