package model

import (
	"time"
)

// DataCollection is a named set of key/value pairs owned by a user
type DataCollection struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_data_collections_user_name"`
	Name      string    `gorm:"not null;size:255;uniqueIndex:idx_data_collections_user_name"`
	Source    string    `gorm:"not null;size:64"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Items []DataCollectionItem `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for DataCollection
func (DataCollection) TableName() string {
	return "data_collections"
}

// DataCollectionItem is one ordered entry of a collection
type DataCollectionItem struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	CollectionID uint64 `gorm:"not null;index"`
	Key          string `gorm:"not null;size:255"`
	Value        string `gorm:"type:text"`
	Position     int    `gorm:"not null"`
}

// TableName specifies the table name for DataCollectionItem
func (DataCollectionItem) TableName() string {
	return "data_collection_items"
}
