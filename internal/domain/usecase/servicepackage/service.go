package servicepackage

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// defaultPackages seed an empty catalogue
var defaultPackages = []usecase.PackageInput{
	{Name: "Starter", Description: "One device for a week", Price: "4.99", DurationDays: 7, DeviceLimit: 1},
	{Name: "Pro", Description: "Three devices for a month", Price: "19.99", DurationDays: 30, DeviceLimit: 3},
	{Name: "Team", Description: "Ten devices for a month", Price: "59.99", DurationDays: 30, DeviceLimit: 10},
}

// Service implements usecase.PackageUseCase
type Service struct {
	packages     persistence.ServicePackageRepository
	userPackages persistence.UserPackageRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new package service
func NewService(
	packages persistence.ServicePackageRepository,
	userPackages persistence.UserPackageRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		packages:     packages,
		userPackages: userPackages,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListActive returns the packages that can be bought
func (s *Service) ListActive(ctx context.Context) ([]*entity.ServicePackage, error) {
	return s.packages.List(ctx, true)
}

// MyPackages returns the packages purchased by a user
func (s *Service) MyPackages(ctx context.Context, userID uint64) ([]*entity.UserPackage, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.userPackages.ListByUser(ctx, userID)
}

// Create adds a package to the catalogue
func (s *Service) Create(ctx context.Context, in usecase.PackageInput) (*entity.ServicePackage, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	pkg, err := entity.NewServicePackage(in.Name, in.Description, price, in.DurationDays, in.DeviceLimit, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if in.Active != nil {
		pkg.Active = *in.Active
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	s.logger.Info("Service package created", map[string]any{"package_id": pkg.ID, "name": pkg.Name})
	return pkg, nil
}

// Update replaces the editable fields of a package
func (s *Service) Update(ctx context.Context, id uint64, in usecase.PackageInput) (*entity.ServicePackage, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg.Name = strings.TrimSpace(in.Name)
	pkg.Description = in.Description
	pkg.PriceInCents = price
	pkg.DurationDays = in.DurationDays
	pkg.DeviceLimit = in.DeviceLimit
	if in.Active != nil {
		pkg.Active = *in.Active
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	pkg.UpdatedAt = s.timeProvider.Now()

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// SetActive switches a package on or off
func (s *Service) SetActive(ctx context.Context, id uint64, active bool) (*entity.ServicePackage, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pkg.Active = active
	pkg.UpdatedAt = s.timeProvider.Now()
	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// ExpireDue marks purchased packages past their expiry as expired
func (s *Service) ExpireDue(ctx context.Context) (int64, error) {
	n, err := s.userPackages.ExpireDue(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Failed to expire user packages", map[string]any{"error": err.Error()})
		return 0, err
	}
	if n > 0 {
		s.logger.Info("User packages expired", map[string]any{"count": n})
	}
	return n, nil
}

// EnsureDefaults creates the starter catalogue when it is empty
func (s *Service) EnsureDefaults(ctx context.Context) error {
	existing, err := s.packages.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, in := range defaultPackages {
		if _, err := s.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func parsePrice(price string) (int64, error) {
	cents, err := entity.ValidateAndConvertAmount(strings.TrimSpace(price))
	if err != nil {
		v := errs.NewValidationError()
		v.Add("price", err.Error())
		return 0, v
	}
	return cents, nil
}
