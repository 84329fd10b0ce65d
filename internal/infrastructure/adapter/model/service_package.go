package model

import (
	"time"
)

// ServicePackage represents a purchasable package in the catalogue
type ServicePackage struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"uniqueIndex;not null;size:100"`
	Description  string    `gorm:"type:text"`
	PriceInCents int64     `gorm:"not null;check:chk_service_packages_price,price_in_cents >= 0"`
	DurationDays int       `gorm:"not null"`
	DeviceLimit  int       `gorm:"not null"`
	Active       bool      `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for ServicePackage
func (ServicePackage) TableName() string {
	return "service_packages"
}

// UserPackage represents a package bought by a user
type UserPackage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index:idx_user_packages_user_package"`
	PackageID uint64    `gorm:"not null;index:idx_user_packages_user_package"`
	StartsAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Status    string    `gorm:"not null;size:20;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Package ServicePackage `gorm:"foreignKey:PackageID;references:ID"`
}

// TableName specifies the table name for UserPackage
func (UserPackage) TableName() string {
	return "user_packages"
}
