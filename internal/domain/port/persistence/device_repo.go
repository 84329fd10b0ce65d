package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// DeviceRepository stores devices mirrored from the agent bridge
type DeviceRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Device, error)
	ListAll(ctx context.Context) ([]*entity.Device, error)

	// GetByID retrieves a device
	//
	// Possible errors:
	// - ErrDeviceNotFound: If the device doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Device, error)

	// Upsert inserts or updates a device keyed by its external ID
	Upsert(ctx context.Context, device *entity.Device) error

	// OnlineUserIDs returns the distinct owners of devices not marked offline
	OnlineUserIDs(ctx context.Context) ([]uint64, error)

	// MarkOfflineExcept sets every device of the user whose external ID is not in keep to offline
	MarkOfflineExcept(ctx context.Context, userID uint64, keep []string, at time.Time) (int64, error)
}
