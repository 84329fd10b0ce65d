package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	authport "github.com/amirhossein-jamali/agent-console/internal/domain/port/auth"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	mockauth "github.com/amirhossein-jamali/agent-console/mocks/port/auth"
	mockcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/agent-console/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routeMocks struct {
	settings *mockusecase.MockSettingsUseCase
	packages *mockusecase.MockPackageUseCase
	users    *mockusecase.MockUserUseCase
}

func setupRouter(t *testing.T) (*gin.Engine, routeMocks) {
	gin.SetMode(gin.TestMode)

	logger := mockcore.NewMockLogger(t)
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}

	issuer := mockauth.NewMockTokenIssuer(t)
	issuer.On("Verify", "user-token").Return(&authport.Claims{UserID: 7, Role: entity.RoleUser}, nil).Maybe()
	issuer.On("Verify", "admin-token").Return(&authport.Claims{UserID: 1, Role: entity.RoleAdmin}, nil).Maybe()
	issuer.On("Verify", "demoted-token").Return(&authport.Claims{UserID: 3, Role: entity.RoleAdmin}, nil).Maybe()
	issuer.On("Verify", "disabled-token").Return(&authport.Claims{UserID: 4, Role: entity.RoleUser}, nil).Maybe()
	issuer.On("Verify", "deleted-token").Return(&authport.Claims{UserID: 5, Role: entity.RoleUser}, nil).Maybe()

	m := routeMocks{
		settings: mockusecase.NewMockSettingsUseCase(t),
		packages: mockusecase.NewMockPackageUseCase(t),
		users:    mockusecase.NewMockUserUseCase(t),
	}
	m.users.On("Me", mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Role: entity.RoleUser, Active: true}, nil).Maybe()
	m.users.On("Me", mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Role: entity.RoleAdmin, Active: true}, nil).Maybe()
	m.users.On("Me", mock.Anything, uint64(3)).Return(&entity.User{ID: 3, Role: entity.RoleUser, Active: true}, nil).Maybe()
	m.users.On("Me", mock.Anything, uint64(4)).Return(&entity.User{ID: 4, Role: entity.RoleUser, Active: false}, nil).Maybe()
	m.users.On("Me", mock.Anything, uint64(5)).Return(nil, domainerr.ErrUserNotFound).Maybe()
	wallet := mockusecase.NewMockWalletUseCase(t)

	h := Handlers{
		User:         handler.NewUserHandler(m.users, logger),
		Transaction:  handler.NewTransactionHandler(wallet, m.settings, logger),
		Package:      handler.NewPackageHandler(m.packages, wallet, logger),
		Notification: handler.NewNotificationHandler(mockusecase.NewMockNotificationUseCase(t), logger),
		Device:       handler.NewDeviceHandler(mockusecase.NewMockDeviceUseCase(t), logger),
		Chat:         handler.NewChatHandler(mockusecase.NewMockChatUseCase(t), logger),
		Collection:   handler.NewCollectionHandler(mockusecase.NewMockCollectionUseCase(t), logger),
		Health:       handler.NewHealthHandler(map[string]handler.Pinger{}, time.Second, logger),
	}

	r := gin.New()
	SetupMiddlewares(r, logger, []string{"*"}, nil)
	SetupRoutes(r, h, Options{
		Issuer:      issuer,
		Accounts:    m.users,
		ChatLimiter: middleware.NewRateLimiter(10, 1),
		Metrics:     http.NotFoundHandler(),
	})
	return r, m
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutesAccessControl(t *testing.T) {
	r, m := setupRouter(t)
	m.packages.On("ListActive", mock.Anything).Return([]*entity.ServicePackage{}, nil)
	m.settings.On("GetSettings", mock.Anything).Return(&entity.WithdrawalSetting{Enabled: true}, nil)

	assert.Equal(t, http.StatusOK, get(r, "/health", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/packages", "").Code, "catalogue is public")
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/wallet", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/admin/users", "").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/admin/withdrawal-settings", "user-token").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/admin/withdrawal-settings", "admin-token").Code)
}

func TestRoutesReloadAccount(t *testing.T) {
	r, m := setupRouter(t)
	m.settings.On("GetSettings", mock.Anything).Return(&entity.WithdrawalSetting{Enabled: true}, nil).Maybe()

	assert.Equal(t, http.StatusForbidden, get(r, "/api/admin/withdrawal-settings", "demoted-token").Code,
		"stored role wins over the token role")
	assert.Equal(t, http.StatusForbidden, get(r, "/api/me", "disabled-token").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/me", "deleted-token").Code)
}

func TestRoutesRequestID(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(r, "/health", "")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
