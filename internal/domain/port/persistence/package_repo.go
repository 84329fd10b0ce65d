package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// ServicePackageRepository stores the package catalogue
type ServicePackageRepository interface {
	// GetByID retrieves a package
	//
	// Possible errors:
	// - ErrPackageNotFound: If the package doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.ServicePackage, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.ServicePackage, error)
	Create(ctx context.Context, pkg *entity.ServicePackage) error
	Update(ctx context.Context, pkg *entity.ServicePackage) error
}

// UserPackageRepository stores purchased packages
type UserPackageRepository interface {
	// FindActive returns the active package of a user for packageID, or nil when none exists
	FindActive(ctx context.Context, userID, packageID uint64) (*entity.UserPackage, error)
	Create(ctx context.Context, up *entity.UserPackage) error
	Update(ctx context.Context, up *entity.UserPackage) error
	ListByUser(ctx context.Context, userID uint64) ([]*entity.UserPackage, error)

	// ExpireDue marks active packages whose expiry is at or before now as expired and returns the count
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}
