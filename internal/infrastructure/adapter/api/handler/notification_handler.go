package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the dashboard notifications
type NotificationHandler struct {
	notifications usecase.NotificationUseCase
	logger        coreport.Logger
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(notifications usecase.NotificationUseCase, logger coreport.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

// List handles GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var q dto.NotificationQuery
	if err := bindQuery(c, &q); err != nil {
		respondError(c, h.logger, "list notifications", err)
		return
	}

	page, err := h.notifications.List(c.Request.Context(), middleware.CurrentUserID(c), q.UnreadOnly, q.Page, q.PageSize)
	if err != nil {
		respondError(c, h.logger, "list notifications", err)
		return
	}

	items := make([]dto.NotificationResponse, 0, len(page.Items))
	for _, n := range page.Items {
		items = append(items, dto.NewNotificationResponse(n))
	}
	respond(c, http.StatusOK, dto.NotificationPageResponse{
		PageResponse: dto.PageResponse[dto.NotificationResponse]{
			Items:    items,
			Total:    page.Total,
			Page:     page.Page,
			PageSize: page.PageSize,
		},
		Unread: page.Unread,
	})
}

// MarkRead handles POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, "mark notification read", err)
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, h.logger, "mark notification read", err)
		return
	}
	respondMessage(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.notifications.MarkAllRead(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "mark all notifications read", err)
		return
	}
	respond(c, http.StatusOK, gin.H{"updated": n})
}
