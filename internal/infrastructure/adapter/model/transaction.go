package model

import (
	"time"
)

// Transaction represents the database model for wallet transactions
type Transaction struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement"`
	Reference     string  `gorm:"uniqueIndex;not null;size:255"`
	UserID        uint64  `gorm:"not null;index"`
	WalletID      uint64  `gorm:"not null;index"`
	Type          string  `gorm:"not null;size:20"`
	AmountInCents int64   `gorm:"not null"`
	FeeInCents    int64   `gorm:"not null"`
	Status        string  `gorm:"not null;size:20;index"`
	Method        string  `gorm:"size:50"`
	Note          string  `gorm:"type:text"`
	BalanceAfter  int64   `gorm:"not null"`
	ProcessedBy   *uint64 `gorm:"index"`
	ProcessedAt   *time.Time
	Metadata      string    `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`

	Wallet Wallet `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
