package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	authport "github.com/amirhossein-jamali/agent-console/internal/domain/port/auth"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by Authenticate
const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// Authenticate verifies the bearer token and stores the caller identity in the context
func Authenticate(issuer authport.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Missing bearer token")
			return
		}

		claims, err := issuer.Verify(strings.TrimSpace(token))
		if err != nil {
			abort(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// AccountLoader loads the stored state of an account
type AccountLoader interface {
	Me(ctx context.Context, userID uint64) (*entity.User, error)
}

// RequireActiveAccount reloads the caller after Authenticate. Disabled or deleted accounts are
// rejected and the stored role replaces the one carried by the token.
func RequireActiveAccount(accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.Me(c.Request.Context(), CurrentUserID(c))
		switch {
		case errors.Is(err, domainerr.ErrUserNotFound), errors.Is(err, domainerr.ErrInvalidUserID):
			abort(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Account no longer exists")
			return
		case err != nil:
			_ = c.Error(err)
			abort(c, http.StatusInternalServerError, domainerr.ErrInternalServer, "Failed to load account")
			return
		case !user.Active:
			abort(c, http.StatusForbidden, domainerr.ErrUserInactive, "Account is disabled")
			return
		}

		c.Set(RoleKey, user.Role)
		c.Next()
	}
}

// RequireRole allows only callers with the given role
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != role {
			abort(c, http.StatusForbidden, domainerr.ErrForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// RequirePermission allows only callers whose role grants perm
func RequirePermission(perm entity.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentRole(c).HasPermission(perm) {
			abort(c, http.StatusForbidden, domainerr.ErrForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or 0
func CurrentUserID(c *gin.Context) uint64 {
	id, _ := c.Get(UserIDKey)
	userID, _ := id.(uint64)
	return userID
}

// CurrentRole returns the authenticated role, or an empty role
func CurrentRole(c *gin.Context) entity.Role {
	r, _ := c.Get(RoleKey)
	role, _ := r.(entity.Role)
	return role
}

func abort(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, dto.Response{
		Success: false,
		Message: message,
		Code:    domainerr.ErrorCode(err),
	})
}
