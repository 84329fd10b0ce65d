package model

import (
	"time"
)

// Notification represents a dashboard notification
type Notification struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index"`
	Type      string `gorm:"not null;size:20"`
	Title     string `gorm:"not null;size:255"`
	Body      string `gorm:"type:text"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
