package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ChatHandler serves chat sessions and the agent loop
type ChatHandler struct {
	chat   usecase.ChatUseCase
	logger coreport.Logger
}

// NewChatHandler creates a new chat handler instance
func NewChatHandler(chat usecase.ChatUseCase, logger coreport.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

// CreateSession handles POST /api/chat/sessions
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "create chat session", err)
		return
	}

	session, err := h.chat.CreateSession(c.Request.Context(), middleware.CurrentUserID(c), usecase.CreateSessionRequest{
		Provider: req.Provider,
		Model:    req.Model,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		respondError(c, h.logger, "create chat session", err)
		return
	}
	respond(c, http.StatusCreated, dto.NewChatSessionResponse(session))
}

// ListSessions handles GET /api/chat/sessions
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.chat.ListSessions(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list chat sessions", err)
		return
	}

	items := make([]dto.ChatSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, dto.NewChatSessionResponse(s))
	}
	respond(c, http.StatusOK, items)
}

// History handles GET /api/chat/sessions/:id
func (h *ChatHandler) History(c *gin.Context) {
	history, err := h.chat.History(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "chat history", err)
		return
	}

	messages := make([]dto.ChatMessageResponse, 0, len(history.Messages))
	for _, m := range history.Messages {
		messages = append(messages, dto.NewChatMessageResponse(m))
	}
	respond(c, http.StatusOK, dto.ChatHistoryResponse{
		Session:  dto.NewChatSessionResponse(history.Session),
		Messages: messages,
	})
}

// DeleteSession handles DELETE /api/chat/sessions/:id
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	if err := h.chat.DeleteSession(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete chat session", err)
		return
	}
	respondMessage(c, http.StatusOK, "Session deleted", nil)
}

// SendMessage handles POST /api/chat/sessions/:id/messages.
// The response is the final assistant message of the turn.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "send chat message", err)
		return
	}

	reply, err := h.chat.SendMessage(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, h.logger, "send chat message", err)
		return
	}
	respond(c, http.StatusOK, dto.NewChatMessageResponse(reply))
}
