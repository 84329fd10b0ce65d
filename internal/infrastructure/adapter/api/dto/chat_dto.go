package dto

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// CreateSessionRequest opens a chat session
type CreateSessionRequest struct {
	Provider string  `json:"provider" binding:"required,oneof=openai claude gemini"`
	Model    string  `json:"model" binding:"max=100"`
	DeviceID *uint64 `json:"deviceId"`
}

// SendMessageRequest carries one user turn
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=8000"`
}

// ChatSessionResponse represents a chat session
type ChatSessionResponse struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model,omitempty"`
	DeviceID  *uint64   `json:"deviceId,omitempty"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToolCallResponse is one tool invocation requested by the assistant
type ToolCallResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ChatMessageResponse represents one stored turn
type ChatMessageResponse struct {
	ID         uint64             `json:"id"`
	Role       string             `json:"role"`
	Content    string             `json:"content"`
	ToolCalls  []ToolCallResponse `json:"toolCalls,omitempty"`
	ToolCallID string             `json:"toolCallId,omitempty"`
	ToolName   string             `json:"toolName,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// ChatHistoryResponse is a session with its messages
type ChatHistoryResponse struct {
	Session  ChatSessionResponse   `json:"session"`
	Messages []ChatMessageResponse `json:"messages"`
}

// NewChatSessionResponse maps a session entity
func NewChatSessionResponse(s *entity.ChatSession) ChatSessionResponse {
	return ChatSessionResponse{
		ID:        s.ID,
		Provider:  s.Provider,
		Model:     s.Model,
		DeviceID:  s.DeviceID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewChatMessageResponse maps a message entity
func NewChatMessageResponse(m *entity.ChatMessage) ChatMessageResponse {
	resp := ChatMessageResponse{
		ID:         m.ID,
		Role:       string(m.Role),
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
		ToolName:   m.ToolName,
		CreatedAt:  m.CreatedAt,
	}
	for _, tc := range m.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, ToolCallResponse{ID: tc.ID, Name: tc.Name, Arguments: tc.Arguments})
	}
	return resp
}

// SaveCollectionRequest creates or replaces a named collection
type SaveCollectionRequest struct {
	Name  string                  `json:"name" binding:"required,max=100"`
	Items []CollectionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CollectionItemRequest is one key/value pair to store
type CollectionItemRequest struct {
	Key   string `json:"key" binding:"required,max=200"`
	Value string `json:"value" binding:"max=10000"`
}

// CollectionItemResponse is one key/value pair
type CollectionItemResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CollectionResponse represents a data collection. Items are omitted in listings.
type CollectionResponse struct {
	ID        uint64                   `json:"id"`
	Name      string                   `json:"name"`
	Source    string                   `json:"source"`
	Items     []CollectionItemResponse `json:"items,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// NewCollectionResponse maps a collection entity
func NewCollectionResponse(c *entity.UserDataCollection) CollectionResponse {
	resp := CollectionResponse{
		ID:        c.ID,
		Name:      c.Name,
		Source:    c.Source,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, item := range c.Items {
		resp.Items = append(resp.Items, CollectionItemResponse{Key: item.Key, Value: item.Value})
	}
	return resp
}
