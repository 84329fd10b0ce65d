package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	authport "github.com/amirhossein-jamali/agent-console/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
)

// UserUseCase handles account and authentication logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	hasher       authport.PasswordHasher
	tokens       authport.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	currency     string
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	hasher authport.PasswordHasher,
	tokens authport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	currency string,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
		currency:     currency,
	}
}

// Me returns the profile of the authenticated user
func (u *UserUseCase) Me(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// emailTaken checks if a user with the given email exists
func (u *UserUseCase) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := u.uow.GetUserRepository(ctx).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
