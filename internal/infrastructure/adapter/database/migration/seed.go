package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// AdminSeeder creates the bootstrap admin account
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

// PackageSeeder fills an empty catalogue
type PackageSeeder interface {
	EnsureDefaults(ctx context.Context) error
}

// AdminAccount describes the bootstrap admin. An empty email skips admin seeding.
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// SeedDefaults creates the bootstrap admin and the default packages when missing
func SeedDefaults(ctx context.Context, admin AdminAccount, users AdminSeeder, packages PackageSeeder, logger coreport.Logger) error {
	if admin.Email != "" {
		if err := users.EnsureAdmin(ctx, admin.Name, admin.Email, admin.Password); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	} else {
		logger.Warn("No bootstrap admin configured", nil)
	}

	if err := packages.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("seed packages: %w", err)
	}
	return nil
}
