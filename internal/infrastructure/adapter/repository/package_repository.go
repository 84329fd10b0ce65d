package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ServicePackageRepository implements ServicePackageRepository interface using GORM
type ServicePackageRepository struct {
	db     *gorm.DB
	errors dbErrorHandler
}

// NewServicePackageRepository creates a new ServicePackageRepository instance
func NewServicePackageRepository(db *gorm.DB, logger coreport.Logger) *ServicePackageRepository {
	return &ServicePackageRepository{
		db:     db,
		errors: newDBErrorHandler(logger, errs.ErrPackageNotFound, errs.ErrConstraintViolation),
	}
}

func packageToEntity(m *model.ServicePackage) *entity.ServicePackage {
	return &entity.ServicePackage{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		PriceInCents: m.PriceInCents,
		DurationDays: m.DurationDays,
		DeviceLimit:  m.DeviceLimit,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a package
func (r *ServicePackageRepository) GetByID(ctx context.Context, id uint64) (*entity.ServicePackage, error) {
	var m model.ServicePackage
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.errors.handle("getting package", err, map[string]any{"package_id": id})
	}
	return packageToEntity(&m), nil
}

// List returns packages ordered by price
func (r *ServicePackageRepository) List(ctx context.Context, activeOnly bool) ([]*entity.ServicePackage, error) {
	query := r.db.WithContext(ctx).Model(&model.ServicePackage{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var rows []model.ServicePackage
	if err := query.Order("price_in_cents, id").Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing packages", err, nil)
	}

	result := make([]*entity.ServicePackage, 0, len(rows))
	for i := range rows {
		result = append(result, packageToEntity(&rows[i]))
	}
	return result, nil
}

// Create inserts a package
func (r *ServicePackageRepository) Create(ctx context.Context, pkg *entity.ServicePackage) error {
	m := model.ServicePackage{
		Name:         pkg.Name,
		Description:  pkg.Description,
		PriceInCents: pkg.PriceInCents,
		DurationDays: pkg.DurationDays,
		DeviceLimit:  pkg.DeviceLimit,
		Active:       pkg.Active,
		CreatedAt:    pkg.CreatedAt,
		UpdatedAt:    pkg.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating package", err, map[string]any{"name": pkg.Name})
	}
	pkg.ID = m.ID
	return nil
}

// Update saves every editable field of a package
func (r *ServicePackageRepository) Update(ctx context.Context, pkg *entity.ServicePackage) error {
	result := r.db.WithContext(ctx).Model(&model.ServicePackage{}).
		Where("id = ?", pkg.ID).
		Updates(map[string]any{
			"name":           pkg.Name,
			"description":    pkg.Description,
			"price_in_cents": pkg.PriceInCents,
			"duration_days":  pkg.DurationDays,
			"device_limit":   pkg.DeviceLimit,
			"active":         pkg.Active,
			"updated_at":     pkg.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating package", result.Error, map[string]any{"package_id": pkg.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrPackageNotFound
	}
	return nil
}

// UserPackageRepository implements UserPackageRepository interface using GORM
type UserPackageRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewUserPackageRepository creates a new UserPackageRepository instance
func NewUserPackageRepository(db *gorm.DB, logger coreport.Logger) *UserPackageRepository {
	return &UserPackageRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrNotFound, errs.ErrConstraintViolation),
	}
}

func userPackageToEntity(m *model.UserPackage) *entity.UserPackage {
	return &entity.UserPackage{
		ID:        m.ID,
		UserID:    m.UserID,
		PackageID: m.PackageID,
		StartsAt:  m.StartsAt,
		ExpiresAt: m.ExpiresAt,
		Status:    entity.UserPackageStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FindActive returns the active package of a user for packageID, or nil when none exists
func (r *UserPackageRepository) FindActive(ctx context.Context, userID, packageID uint64) (*entity.UserPackage, error) {
	var m model.UserPackage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND package_id = ? AND status = ?", userID, packageID, string(entity.UserPackageActive)).
		Order("expires_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.errors.handle("finding active package", err, map[string]any{
			"user_id":    userID,
			"package_id": packageID,
		})
	}
	return userPackageToEntity(&m), nil
}

// Create inserts a purchased package
func (r *UserPackageRepository) Create(ctx context.Context, up *entity.UserPackage) error {
	m := model.UserPackage{
		UserID:    up.UserID,
		PackageID: up.PackageID,
		StartsAt:  up.StartsAt,
		ExpiresAt: up.ExpiresAt,
		Status:    string(up.Status),
		CreatedAt: up.CreatedAt,
		UpdatedAt: up.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Omit("Package").Create(&m).Error; err != nil {
		return r.errors.handle("creating user package", err, map[string]any{"user_id": up.UserID})
	}
	up.ID = m.ID
	return nil
}

// Update saves expiry and status
func (r *UserPackageRepository) Update(ctx context.Context, up *entity.UserPackage) error {
	result := r.db.WithContext(ctx).Model(&model.UserPackage{}).
		Where("id = ?", up.ID).
		Updates(map[string]any{
			"expires_at": up.ExpiresAt,
			"status":     string(up.Status),
			"updated_at": up.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating user package", result.Error, map[string]any{"user_package_id": up.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListByUser returns the packages of a user, newest expiry first
func (r *UserPackageRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.UserPackage, error) {
	var rows []model.UserPackage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expires_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errors.handle("listing user packages", err, map[string]any{"user_id": userID})
	}

	result := make([]*entity.UserPackage, 0, len(rows))
	for i := range rows {
		result = append(result, userPackageToEntity(&rows[i]))
	}
	return result, nil
}

// ExpireDue marks active packages whose expiry is at or before now as expired
func (r *UserPackageRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.UserPackage{}).
		Where("status = ? AND expires_at <= ?", string(entity.UserPackageActive), now).
		Updates(map[string]any{
			"status":     string(entity.UserPackageExpired),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, r.errors.handle("expiring packages", result.Error, nil)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Expired user packages", map[string]any{"count": result.RowsAffected})
	}
	return result.RowsAffected, nil
}
