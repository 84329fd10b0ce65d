package routes

import (
	"net/http"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	authport "github.com/amirhossein-jamali/agent-console/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler mounted by SetupRoutes
type Handlers struct {
	User         *handler.UserHandler
	Transaction  *handler.TransactionHandler
	Package      *handler.PackageHandler
	Notification *handler.NotificationHandler
	Device       *handler.DeviceHandler
	Chat         *handler.ChatHandler
	Collection   *handler.CollectionHandler
	Health       *handler.HealthHandler
}

// Options carries the cross-cutting pieces routes need
type Options struct {
	Issuer      authport.TokenIssuer
	Accounts    middleware.AccountLoader
	ChatLimiter *middleware.RateLimiter
	Metrics     http.Handler
}

// authenticated returns the middleware chain that identifies the caller
func (o Options) authenticated() []gin.HandlerFunc {
	chain := []gin.HandlerFunc{middleware.Authenticate(o.Issuer)}
	if o.Accounts != nil {
		chain = append(chain, middleware.RequireActiveAccount(o.Accounts))
	}
	return chain
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/health", h.Health.Health)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.User.Register)
		auth.POST("/login", h.User.Login)
	}
	api.GET("/packages", h.Package.List)

	// Authenticated user routes
	user := api.Group("", opts.authenticated()...)
	{
		user.GET("/me", h.User.Me)

		wallet := user.Group("/wallet", middleware.RequirePermission(entity.PermWalletUse))
		wallet.GET("", h.Transaction.GetWallet)
		wallet.GET("/transactions", h.Transaction.MyTransactions)
		wallet.POST("/deposits", h.Transaction.Deposit)
		wallet.POST("/withdrawals", h.Transaction.Withdraw)

		user.GET("/packages/mine", h.Package.Mine)
		user.POST("/packages/:id/purchase", middleware.RequirePermission(entity.PermWalletUse), h.Package.Purchase)

		user.GET("/notifications", h.Notification.List)
		user.POST("/notifications/read-all", h.Notification.MarkAllRead)
		user.POST("/notifications/:id/read", h.Notification.MarkRead)

		user.GET("/devices", h.Device.List)
		user.POST("/devices/sync", h.Device.Sync)

		chat := user.Group("/chat", middleware.RequirePermission(entity.PermChatUse))
		chat.GET("/sessions", h.Chat.ListSessions)
		chat.POST("/sessions", h.Chat.CreateSession)
		chat.GET("/sessions/:id", h.Chat.History)
		chat.DELETE("/sessions/:id", h.Chat.DeleteSession)
		sendMessage := []gin.HandlerFunc{h.Chat.SendMessage}
		if opts.ChatLimiter != nil {
			sendMessage = append([]gin.HandlerFunc{opts.ChatLimiter.Middleware()}, sendMessage...)
		}
		chat.POST("/sessions/:id/messages", sendMessage...)

		user.GET("/collections", h.Collection.List)
		user.POST("/collections", h.Collection.Save)
		user.GET("/collections/:id", h.Collection.Get)
		user.DELETE("/collections/:id", h.Collection.Delete)
	}

	// Admin routes
	admin := api.Group("/admin", append(opts.authenticated(), middleware.RequireRole(entity.RoleAdmin))...)
	{
		admin.GET("/users", middleware.RequirePermission(entity.PermUsersManage), h.User.ListUsers)
		admin.PATCH("/users/:id", middleware.RequirePermission(entity.PermUsersManage), h.User.UpdateUser)

		admin.GET("/transactions", middleware.RequirePermission(entity.PermWalletApprove), h.Transaction.AllTransactions)
		admin.POST("/transactions/:id/approve", middleware.RequirePermission(entity.PermWalletApprove), h.Transaction.Approve)
		admin.POST("/transactions/:id/reject", middleware.RequirePermission(entity.PermWalletApprove), h.Transaction.Reject)
		admin.POST("/wallets/:userId/adjust", middleware.RequirePermission(entity.PermWalletAdjust), h.Transaction.Adjust)

		admin.GET("/withdrawal-settings", middleware.RequirePermission(entity.PermSettingsManage), h.Transaction.GetSettings)
		admin.PUT("/withdrawal-settings", middleware.RequirePermission(entity.PermSettingsManage), h.Transaction.UpdateSettings)

		admin.POST("/packages", middleware.RequirePermission(entity.PermPackagesManage), h.Package.Create)
		admin.PUT("/packages/:id", middleware.RequirePermission(entity.PermPackagesManage), h.Package.Update)

		admin.GET("/devices", middleware.RequirePermission(entity.PermDevicesViewAll), h.Device.ListAll)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, corsOrigins []string, recorder middleware.RequestRecorder) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(corsOrigins))
	if recorder != nil {
		router.Use(middleware.Metrics(recorder))
	}
}
