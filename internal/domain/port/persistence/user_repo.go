package persistence

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// UserFilter narrows admin user listings
type UserFilter struct {
	Search   string // matched against name and email
	Page     int
	PageSize int
}

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update saves name, role and active flag
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Update(ctx context.Context, user *entity.User) error

	// List returns one page of users and the total count
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)
}
