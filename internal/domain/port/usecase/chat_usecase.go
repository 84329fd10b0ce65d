package usecase

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
)

// CreateSessionRequest opens a chat session
type CreateSessionRequest struct {
	Provider string
	Model    string
	DeviceID *uint64
}

// SessionHistory is a session with all its messages
type SessionHistory struct {
	Session  *entity.ChatSession
	Messages []*entity.ChatMessage
}

// ChatUseCase runs the chat agent loop
type ChatUseCase interface {
	CreateSession(ctx context.Context, userID uint64, req CreateSessionRequest) (*entity.ChatSession, error)
	ListSessions(ctx context.Context, userID uint64) ([]*entity.ChatSession, error)
	History(ctx context.Context, userID uint64, sessionID string) (*SessionHistory, error)
	DeleteSession(ctx context.Context, userID uint64, sessionID string) error

	// SendMessage stores the user text, runs the provider and tool loop and returns the final assistant message
	SendMessage(ctx context.Context, userID uint64, sessionID, text string) (*entity.ChatMessage, error)

	// HandleBridgeEvent records bridge progress events as tool notes
	HandleBridgeEvent(ctx context.Context, event bridge.Event)
}
