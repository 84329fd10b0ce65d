package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// Login checks credentials and issues an access token
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.uow.GetUserRepository(ctx).GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		u.logger.Warn("Failed login attempt", map[string]any{"user_id": user.ID})
		return nil, errs.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, errs.ErrUserInactive
	}

	token, expiresAt, err := u.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &usecase.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
