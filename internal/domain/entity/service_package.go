package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// ServicePackage is a purchasable plan granting device access for a number of days
type ServicePackage struct {
	ID           uint64
	Name         string
	Description  string
	PriceInCents int64
	DurationDays int
	DeviceLimit  int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPackageStatus is the lifecycle state of a purchased package
type UserPackageStatus string

// User package statuses
const (
	UserPackageActive  UserPackageStatus = "active"
	UserPackageExpired UserPackageStatus = "expired"
)

// UserPackage records a package owned by a user
type UserPackage struct {
	ID        uint64
	UserID    uint64
	PackageID uint64
	StartsAt  time.Time
	ExpiresAt time.Time
	Status    UserPackageStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewServicePackage validates and builds a package
func NewServicePackage(name, description string, priceInCents int64, durationDays, deviceLimit int, timeProvider coreport.TimeProvider) (*ServicePackage, error) {
	p := &ServicePackage{
		Name:         strings.TrimSpace(name),
		Description:  description,
		PriceInCents: priceInCents,
		DurationDays: durationDays,
		DeviceLimit:  deviceLimit,
		Active:       true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	now := timeProvider.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Validate checks the package fields
func (p *ServicePackage) Validate() error {
	v := errs.NewValidationError()
	if p.Name == "" {
		v.Add("name", "is required")
	}
	if p.PriceInCents < 0 {
		v.Add("price", "must not be negative")
	}
	if p.DurationDays <= 0 {
		v.Add("durationDays", "must be positive")
	}
	if p.DeviceLimit < 0 {
		v.Add("deviceLimit", "must not be negative")
	}
	return v.OrNil()
}

// Price returns the price as a decimal string
func (p *ServicePackage) Price() string {
	return AmountInCentsToString(p.PriceInCents)
}

// Duration returns the validity period of the package
func (p *ServicePackage) Duration() time.Duration {
	return time.Duration(p.DurationDays) * 24 * time.Hour
}

// NewUserPackage starts a package for a user at now
func NewUserPackage(userID uint64, pkg *ServicePackage, timeProvider coreport.TimeProvider) *UserPackage {
	now := timeProvider.Now()
	return &UserPackage{
		UserID:    userID,
		PackageID: pkg.ID,
		StartsAt:  now,
		ExpiresAt: now.Add(pkg.Duration()),
		Status:    UserPackageActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Extend pushes the expiry of an active package by the package duration
func (up *UserPackage) Extend(pkg *ServicePackage, timeProvider coreport.TimeProvider) {
	up.ExpiresAt = up.ExpiresAt.Add(pkg.Duration())
	up.UpdatedAt = timeProvider.Now()
}

// IsExpiredAt reports whether the package is past its expiry at t
func (up *UserPackage) IsExpiredAt(t time.Time) bool {
	return !t.Before(up.ExpiresAt)
}
