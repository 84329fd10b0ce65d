package model

import (
	"time"
)

// Wallet represents the database model for wallets. Amounts are stored in cents.
type Wallet struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	Balance   int64     `gorm:"not null;check:chk_wallets_balance,balance >= 0"`
	Held      int64     `gorm:"not null;check:chk_wallets_held,held >= 0"`
	Currency  string    `gorm:"not null;size:3"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
