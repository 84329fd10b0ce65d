package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account and admin user requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	respondMessage(c, http.StatusCreated, "Account created", dto.NewUserResponse(user))
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	result, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	respond(c, http.StatusOK, dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.NewUserResponse(result.User),
	})
}

// Me handles GET /api/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userUseCase.Me(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "me", err)
		return
	}
	respond(c, http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q dto.UserQuery
	if err := bindQuery(c, &q); err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}

	page, err := h.userUseCase.ListUsers(c.Request.Context(), persistence.UserFilter{
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}

	items := make([]dto.UserResponse, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, dto.NewUserResponse(u))
	}
	respond(c, http.StatusOK, dto.PageResponse[dto.UserResponse]{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

// UpdateUser handles PATCH /api/admin/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, "update user", err)
		return
	}

	var req dto.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "update user", err)
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), userID, usecase.UpdateUserRequest{
		Active: req.Active,
		Role:   req.Role,
	})
	if err != nil {
		respondError(c, h.logger, "update user", err)
		return
	}

	respondMessage(c, http.StatusOK, "User updated", dto.NewUserResponse(user))
}
