package model

import (
	"time"
)

// ChatSession represents a conversation with an LLM provider
type ChatSession struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    uint64    `gorm:"not null;index"`
	Provider  string    `gorm:"not null;size:20"`
	Model     string    `gorm:"size:100"`
	DeviceID  *uint64   `gorm:"index"`
	Title     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`

	Messages []ChatMessage `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ChatSession
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage is one stored turn of a chat session
type ChatMessage struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	SessionID  string    `gorm:"not null;size:36;index"`
	Role       string    `gorm:"not null;size:20"`
	Content    string    `gorm:"type:text"`
	ToolCalls  string    `gorm:"type:jsonb"`
	ToolCallID string    `gorm:"size:128"`
	ToolName   string    `gorm:"size:128"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}
