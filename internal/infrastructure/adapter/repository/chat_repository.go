package repository

import (
	"context"
	"encoding/json"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ChatRepository implements ChatRepository interface using GORM
type ChatRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewChatRepository creates a new ChatRepository instance
func NewChatRepository(db *gorm.DB, logger coreport.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrSessionNotFound, errs.ErrConstraintViolation),
	}
}

func sessionToModel(s *entity.ChatSession) model.ChatSession {
	return model.ChatSession{
		ID:        s.ID,
		UserID:    s.UserID,
		Provider:  s.Provider,
		Model:     s.Model,
		DeviceID:  s.DeviceID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func sessionToEntity(m *model.ChatSession) *entity.ChatSession {
	return &entity.ChatSession{
		ID:        m.ID,
		UserID:    m.UserID,
		Provider:  m.Provider,
		Model:     m.Model,
		DeviceID:  m.DeviceID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func messageToEntity(m *model.ChatMessage) *entity.ChatMessage {
	msg := &entity.ChatMessage{
		ID:         m.ID,
		SessionID:  m.SessionID,
		Role:       entity.ChatRole(m.Role),
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
		ToolName:   m.ToolName,
		CreatedAt:  m.CreatedAt,
	}
	if m.ToolCalls != "" && m.ToolCalls != "[]" {
		_ = json.Unmarshal([]byte(m.ToolCalls), &msg.ToolCalls)
	}
	return msg
}

// CreateSession inserts a session
func (r *ChatRepository) CreateSession(ctx context.Context, s *entity.ChatSession) error {
	m := sessionToModel(s)
	if err := r.db.WithContext(ctx).Omit("Messages").Create(&m).Error; err != nil {
		return r.errors.handle("creating chat session", err, map[string]any{"user_id": s.UserID})
	}
	return nil
}

// GetSession returns a session owned by userID
func (r *ChatRepository) GetSession(ctx context.Context, userID uint64, id string) (*entity.ChatSession, error) {
	var m model.ChatSession
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		return nil, r.errors.handle("getting chat session", err, map[string]any{"session_id": id})
	}
	return sessionToEntity(&m), nil
}

// FindSession returns a session regardless of owner
func (r *ChatRepository) FindSession(ctx context.Context, id string) (*entity.ChatSession, error) {
	var m model.ChatSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.errors.handle("finding chat session", err, map[string]any{"session_id": id})
	}
	return sessionToEntity(&m), nil
}

// ListSessions returns the sessions of a user, most recently active first
func (r *ChatRepository) ListSessions(ctx context.Context, userID uint64) ([]*entity.ChatSession, error) {
	var rows []model.ChatSession
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing chat sessions", err, map[string]any{"user_id": userID})
	}

	result := make([]*entity.ChatSession, 0, len(rows))
	for i := range rows {
		result = append(result, sessionToEntity(&rows[i]))
	}
	return result, nil
}

// UpdateSession saves title, model and activity time
func (r *ChatRepository) UpdateSession(ctx context.Context, s *entity.ChatSession) error {
	result := r.db.WithContext(ctx).Model(&model.ChatSession{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"title":      s.Title,
			"model":      s.Model,
			"updated_at": s.UpdatedAt,
		})
	if result.Error != nil {
		return r.errors.handle("updating chat session", result.Error, map[string]any{"session_id": s.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes a session of the user with all its messages
func (r *ChatRepository) DeleteSession(ctx context.Context, userID uint64, id string) error {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ChatSession{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("session_id = ?", id).Delete(&model.ChatMessage{}).Error
	})
	if err != nil {
		return r.errors.handle("deleting chat session", err, map[string]any{"session_id": id})
	}
	if deleted == 0 {
		return errs.ErrSessionNotFound
	}
	return nil
}

// AppendMessage stores one message of a session
func (r *ChatRepository) AppendMessage(ctx context.Context, msg *entity.ChatMessage) error {
	toolCalls := "[]"
	if msg.HasToolCalls() {
		raw, err := json.Marshal(msg.ToolCalls)
		if err != nil {
			return err
		}
		toolCalls = string(raw)
	}

	m := model.ChatMessage{
		SessionID:  msg.SessionID,
		Role:       string(msg.Role),
		Content:    msg.Content,
		ToolCalls:  toolCalls,
		ToolCallID: msg.ToolCallID,
		ToolName:   msg.ToolName,
		CreatedAt:  msg.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("appending chat message", err, map[string]any{"session_id": msg.SessionID})
	}
	msg.ID = m.ID
	return nil
}

// ListMessages returns the messages of a session in insertion order
func (r *ChatRepository) ListMessages(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	var rows []model.ChatMessage
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("id").Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing chat messages", err, map[string]any{"session_id": sessionID})
	}

	result := make([]*entity.ChatMessage, 0, len(rows))
	for i := range rows {
		result = append(result, messageToEntity(&rows[i]))
	}
	return result, nil
}
