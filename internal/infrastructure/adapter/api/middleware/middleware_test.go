package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	authport "github.com/amirhossein-jamali/agent-console/internal/domain/port/auth"
	mockauth "github.com/amirhossein-jamali/agent-console/mocks/port/auth"
	mockcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/agent-console/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	issuer := mockauth.NewMockTokenIssuer(t)
	issuer.On("Verify", "good").Return(&authport.Claims{UserID: 7, Role: entity.RoleUser}, nil).Maybe()
	issuer.On("Verify", "expired").Return(nil, errors.New("token is expired")).Maybe()

	r := gin.New()
	r.GET("/me", Authenticate(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "role": CurrentRole(c)})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer expired", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"role":"user"}`, w.Body.String())
			}
		})
	}
}

func TestRequireActiveAccount(t *testing.T) {
	accounts := mockusecase.NewMockUserUseCase(t)
	accounts.On("Me", mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Role: entity.RoleUser, Active: true}, nil).Maybe()
	accounts.On("Me", mock.Anything, uint64(2)).Return(&entity.User{ID: 2, Role: entity.RoleUser, Active: false}, nil).Maybe()
	accounts.On("Me", mock.Anything, uint64(3)).Return(nil, domainerr.ErrUserNotFound).Maybe()
	accounts.On("Me", mock.Anything, uint64(4)).Return(nil, errors.New("connection reset")).Maybe()

	r := gin.New()
	r.GET("/u/:id", func(c *gin.Context) {
		id := map[string]uint64{"1": 1, "2": 2, "3": 3, "4": 4}[c.Param("id")]
		c.Set(UserIDKey, id)
		c.Set(RoleKey, entity.RoleAdmin)
	}, RequireActiveAccount(accounts), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": CurrentRole(c)})
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"active account takes stored role", "/u/1", http.StatusOK},
		{"disabled account", "/u/2", http.StatusForbidden},
		{"deleted account", "/u/3", http.StatusUnauthorized},
		{"lookup failure", "/u/4", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"role":"user"}`, w.Body.String())
			}
		})
	}
}

func TestRequireRoleAndPermission(t *testing.T) {
	as := func(role entity.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(UserIDKey, uint64(1))
			c.Set(RoleKey, role)
			c.Next()
		}
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := gin.New()
	r.GET("/user/admin", as(entity.RoleUser), RequireRole(entity.RoleAdmin), ok)
	r.GET("/admin/admin", as(entity.RoleAdmin), RequireRole(entity.RoleAdmin), ok)
	r.GET("/user/approve", as(entity.RoleUser), RequirePermission(entity.PermWalletApprove), ok)
	r.GET("/user/chat", as(entity.RoleUser), RequirePermission(entity.PermChatUse), ok)

	assert.Equal(t, http.StatusForbidden, serve(r, httptest.NewRequest(http.MethodGet, "/user/admin", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/admin/admin", nil)).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, httptest.NewRequest(http.MethodGet, "/user/approve", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/user/chat", nil)).Code)
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst then refill", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		l := NewRateLimiter(60, 2)
		l.now = func() time.Time { return now }

		assert.True(t, l.Allow("user:1"))
		assert.True(t, l.Allow("user:1"))
		assert.False(t, l.Allow("user:1"))
		assert.True(t, l.Allow("user:2"), "keys are independent")

		now = now.Add(time.Second)
		assert.True(t, l.Allow("user:1"))
	})

	t.Run("idle limiters are collected", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		l := NewRateLimiter(60, 1)
		l.now = func() time.Time { return now }

		l.Allow("a")
		now = now.Add(idleLimiterTTL + time.Minute)
		l.Allow("b")

		l.mu.Lock()
		defer l.mu.Unlock()
		assert.NotContains(t, l.visitors, "a")
		assert.Contains(t, l.visitors, "b")
	})

	t.Run("middleware answers 429 with Retry-After", func(t *testing.T) {
		l := NewRateLimiter(1, 1)
		r := gin.New()
		r.POST("/send", func(c *gin.Context) {
			c.Set(UserIDKey, uint64(5))
			c.Next()
		}, l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		first := serve(r, httptest.NewRequest(http.MethodPost, "/send", nil))
		second := serve(r, httptest.NewRequest(http.MethodPost, "/send", nil))

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, "60", second.Header().Get("Retry-After"))
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := serve(r, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	logger := mockcore.NewMockLogger(t)
	logger.On("Error", "Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom" && fields["path"] == "/panic"
	})).Once()

	r := gin.New()
	r.Use(ErrorHandler(logger))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLoggerLevels(t *testing.T) {
	logger := mockcore.NewMockLogger(t)
	logger.On("Info", "Request processed", mock.MatchedBy(func(f map[string]any) bool { return f["status"] == http.StatusOK })).Once()
	logger.On("Warn", "Request processed", mock.MatchedBy(func(f map[string]any) bool { return f["status"] == http.StatusNotFound })).Once()
	logger.On("Error", "Request processed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusBadGateway && f["user_id"] == uint64(3)
	})).Once()

	r := gin.New()
	r.Use(Logger(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) {
		c.Set(UserIDKey, uint64(3))
		c.Status(http.StatusBadGateway)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://console.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://console.example.com")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://console.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type recorderFunc func(method, path, status string, d time.Duration)

func (f recorderFunc) RequestStarted() func(method, path, status string, d time.Duration) {
	return f
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	var paths []string
	rec := recorderFunc(func(method, path, status string, _ time.Duration) {
		paths = append(paths, method+" "+path+" "+status)
	})

	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, []string{"GET /items/:id 200", "GET unmatched 404"}, paths)
}
