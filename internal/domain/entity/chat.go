package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
)

// ChatRole is the author of a chat message
type ChatRole string

// Chat roles
const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleTool      ChatRole = "tool"
)

// ChatSession is a conversation between a user and an LLM, optionally bound to a device
type ChatSession struct {
	ID        string
	UserID    uint64
	Provider  string
	Model     string
	DeviceID  *uint64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatToolCall is a tool invocation requested by the assistant
type ChatToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ChatMessage is one turn of a chat session
type ChatMessage struct {
	ID         uint64
	SessionID  string
	Role       ChatRole
	Content    string
	ToolCalls  []ChatToolCall
	ToolCallID string // set on tool results
	ToolName   string // set on tool results and progress notes
	CreatedAt  time.Time
}

// NewChatSession validates the session fields
func NewChatSession(id string, userID uint64, provider, model string, deviceID *uint64, now time.Time) (*ChatSession, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	v := errs.NewValidationError()
	if provider == "" {
		v.Add("provider", "is required")
	}
	if id == "" {
		v.Add("id", "is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	return &ChatSession{
		ID:        id,
		UserID:    userID,
		Provider:  provider,
		Model:     model,
		DeviceID:  deviceID,
		Title:     "New chat",
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// HasToolCalls reports whether the assistant asked for tools in this message
func (m *ChatMessage) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}
