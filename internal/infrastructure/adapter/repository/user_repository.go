package repository

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrUserNotFound, errs.ErrDuplicateUser),
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.errors.handle("getting user", err, map[string]any{"user_id": id})
	}
	return userToEntity(&m), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, r.errors.handle("getting user by email", err, nil)
	}
	return userToEntity(&m), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Active:       user.Active,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating user", err, map[string]any{"role": user.Role})
	}
	user.ID = m.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return nil
}

// Update saves name, role and active flag
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"role":       string(user.Role),
			"active":     user.Active,
			"updated_at": user.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating user", result.Error, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// List returns one page of users and the total count
func (r *UserRepository) List(ctx context.Context, filter persistence.UserFilter) ([]*entity.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.errors.handle("counting users", err, nil)
	}

	offset, limit := pageBounds(filter.Page, filter.PageSize)
	var rows []model.User
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, r.errors.handle("listing users", err, nil)
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, userToEntity(&rows[i]))
	}
	return users, total, nil
}
