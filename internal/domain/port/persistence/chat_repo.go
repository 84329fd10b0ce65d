package persistence

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// ChatRepository stores chat sessions and their messages
type ChatRepository interface {
	CreateSession(ctx context.Context, s *entity.ChatSession) error

	// GetSession returns a session owned by userID
	//
	// Possible errors:
	// - ErrSessionNotFound: If the session doesn't exist or belongs to another user
	GetSession(ctx context.Context, userID uint64, id string) (*entity.ChatSession, error)

	// FindSession returns a session regardless of owner
	FindSession(ctx context.Context, id string) (*entity.ChatSession, error)
	ListSessions(ctx context.Context, userID uint64) ([]*entity.ChatSession, error)
	UpdateSession(ctx context.Context, s *entity.ChatSession) error
	DeleteSession(ctx context.Context, userID uint64, id string) error

	AppendMessage(ctx context.Context, m *entity.ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error)
}
