package user

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// ListUsers returns one page of users for the admin panel
func (u *UserUseCase) ListUsers(ctx context.Context, filter persistence.UserFilter) (*usecase.UserPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > usecase.MaxPageSize {
		filter.PageSize = usecase.MaxPageSize
	}
	items, total, err := u.uow.GetUserRepository(ctx).List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &usecase.UserPage{Items: items, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

// SetActive enables or disables an account
func (u *UserUseCase) SetActive(ctx context.Context, userID uint64, active bool) (*entity.User, error) {
	return u.UpdateUser(ctx, userID, usecase.UpdateUserRequest{Active: &active})
}

// SetRole changes the role of an account
func (u *UserUseCase) SetRole(ctx context.Context, userID uint64, role string) (*entity.User, error) {
	return u.UpdateUser(ctx, userID, usecase.UpdateUserRequest{Role: &role})
}

// UpdateUser applies admin-managed changes to an account
func (u *UserUseCase) UpdateUser(ctx context.Context, userID uint64, req usecase.UpdateUserRequest) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if req.Role != nil && !entity.IsValidRole(*req.Role) {
		v := errs.NewValidationError()
		v.Add("role", "must be admin or user")
		return nil, v
	}

	repo := u.uow.GetUserRepository(ctx)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Role != nil {
		user.Role = entity.Role(*req.Role)
	}
	user.UpdatedAt = u.timeProvider.Now()

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}
	u.logger.Info("User updated by admin", map[string]any{
		"user_id": userID,
		"active":  user.Active,
		"role":    string(user.Role),
	})
	return user, nil
}
