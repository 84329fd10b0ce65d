package model

import (
	"time"
)

// Device represents a device mirrored from the agent bridge
type Device struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"uniqueIndex;not null;size:128"`
	UserID     uint64 `gorm:"not null;index"`
	Name       string `gorm:"size:255"`
	Model      string `gorm:"size:255"`
	Status     string `gorm:"not null;size:20"`
	LastSeenAt *time.Time
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Device
func (Device) TableName() string {
	return "devices"
}
