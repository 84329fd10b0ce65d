package user

import (
	"context"
	"unicode/utf8"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// maxPasswordLength is the bcrypt input limit
const maxPasswordLength = 72

// Register creates a user account with the user role and an empty wallet
func (u *UserUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	return u.createAccount(ctx, req.Name, req.Email, req.Password, entity.RoleUser)
}

// EnsureAdmin creates the configured admin account when it does not exist yet
func (u *UserUseCase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}
	taken, err := u.emailTaken(ctx, normalized)
	if err != nil {
		return err
	}
	if taken {
		return nil
	}
	if _, err := u.createAccount(ctx, name, normalized, password, entity.RoleAdmin); err != nil {
		return err
	}
	u.logger.Info("Default admin created", map[string]any{"email": normalized})
	return nil
}

func (u *UserUseCase) createAccount(ctx context.Context, name, email, password string, role entity.Role) (*entity.User, error) {
	v := errs.NewValidationError()
	if n := utf8.RuneCountInString(password); n < entity.MinPasswordLength {
		v.Add("password", "must be at least 8 characters")
	} else if len(password) > maxPasswordLength {
		v.Add("password", "must be at most 72 bytes")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user, err := entity.NewUser(name, email, hash, role, u.timeProvider)
	if err != nil {
		return nil, err
	}

	taken, err := u.emailTaken(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		v.Add("email", "is already registered")
		return nil, v
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	wallet, err := entity.NewWallet(user.ID, u.currency, u.timeProvider)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if err := u.uow.GetWalletRepository(txCtx).Create(txCtx, wallet); err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	})
	return user, nil
}
