package dto

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest changes admin-managed user fields
type UpdateUserRequest struct {
	Active *bool   `json:"active"`
	Role   *string `json:"role" binding:"omitempty,oneof=admin user"`
}

// UserQuery binds the admin user listing
type UserQuery struct {
	PageQuery
	Search string `form:"search"`
}

// UserResponse represents an account without secrets
type UserResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the access token
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
