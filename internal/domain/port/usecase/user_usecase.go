package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
)

// RegisterRequest carries the sign-up form
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UpdateUserRequest changes admin-managed fields. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Active *bool
	Role   *string
}

// UserPage is one page of users
type UserPage struct {
	Items    []*entity.User
	Total    int64
	Page     int
	PageSize int
}

// UserUseCase defines account and authentication operations
type UserUseCase interface {
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, userID uint64) (*entity.User, error)

	ListUsers(ctx context.Context, filter persistence.UserFilter) (*UserPage, error)
	SetActive(ctx context.Context, userID uint64, active bool) (*entity.User, error)
	SetRole(ctx context.Context, userID uint64, role string) (*entity.User, error)
	UpdateUser(ctx context.Context, userID uint64, req UpdateUserRequest) (*entity.User, error)

	// EnsureAdmin creates the configured admin account when it does not exist yet
	EnsureAdmin(ctx context.Context, name, email, password string) error
}
