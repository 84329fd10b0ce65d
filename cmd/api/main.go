package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	chatUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/chat"
	collectionUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/collection"
	deviceUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/device"
	notificationUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/notification"
	packageUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/servicepackage"
	userUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/user"
	walletUseCase "github.com/amirhossein-jamali/agent-console/internal/domain/usecase/wallet"

	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/bridge"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/llm"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Config{Level: cfg.Logger.Level, Format: cfg.Logger.Format})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx := context.Background()
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(&database.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Database,
		SSLMode:            cfg.Database.SSLMode,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		QueryTimeout:       cfg.Database.QueryTimeout,
		LockTimeout:        cfg.Wallet.LockTimeout,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
		LogLevel:           cfg.Database.LogLevel,
		RetryAttempts:      cfg.Database.RetryAttempts,
		RetryDelay:         cfg.Database.RetryDelay,
		MonitorInterval:    cfg.Database.MonitorInterval,
	}, appLogger, tp)

	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Metrics
	promMetrics := metrics.NewPrometheus()
	promMetrics.Registry().MustRegister(collectors.NewDBStatsCollector(dbManager.SQLDB(), cfg.Database.Database))

	// Optional listing cache
	var listingCache persistence.Cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cache.Config{
			Enabled:   cfg.Redis.Enabled,
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			Namespace: cfg.Redis.Namespace,
		})
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", map[string]any{
				"error": err.Error(),
			})
		} else {
			listingCache = cache.NewRedisCache(redisClient, cfg.Redis.Namespace+":", appLogger)
			defer func() { _ = redisClient.Close() }()
		}
	}

	// Authentication
	tokenIssuer, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token issuer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize repositories
	db := dbManager.DB()
	uow := dbManager.CreateUnitOfWork()
	packageRepo := repository.NewServicePackageRepository(db, appLogger)
	userPackageRepo := repository.NewUserPackageRepository(db, appLogger)
	settingRepo := repository.NewWithdrawalSettingRepository(db, appLogger)
	notificationRepo := repository.NewNotificationRepository(db, appLogger)
	deviceRepo := repository.NewDeviceRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)
	collectionRepo := repository.NewDataCollectionRepository(db, appLogger)

	// External adapters
	bridgeConfig := bridge.Config{
		RestURL:        cfg.Bridge.RestURL,
		WSURL:          cfg.Bridge.WSURL,
		Timeout:        cfg.Bridge.Timeout,
		ReconnectDelay: cfg.Bridge.ReconnectDelay,
	}
	bridgeClient := bridge.NewClient(bridgeConfig, appLogger)
	providers := llm.NewRegistry(llm.Config{
		OpenAI: llmProvider(cfg.LLM.OpenAI),
		Claude: llmProvider(cfg.LLM.Claude),
		Gemini: llmProvider(cfg.LLM.Gemini),
	}, appLogger)

	// Initialize use cases
	users := userUseCase.NewUserUseCase(uow, hasher, tokenIssuer, tp, appLogger, cfg.Wallet.DefaultCurrency)
	packages := packageUseCase.NewService(packageRepo, userPackageRepo, tp, appLogger)
	settings := walletUseCase.NewSettingsService(settingRepo, tp, appLogger)
	wallets := walletUseCase.NewService(uow, packageRepo, settings, listingCache, tp, appLogger, promMetrics, walletUseCase.Config{
		QueueSize: cfg.Wallet.QueueSize,
		Currency:  cfg.Wallet.DefaultCurrency,
		CacheTTL:  cfg.Redis.CacheTTL,
	})
	notifications := notificationUseCase.NewService(notificationRepo, tp, appLogger)
	collections := collectionUseCase.NewService(collectionRepo, tp, appLogger)
	devices := deviceUseCase.NewService(deviceRepo, bridgeClient, tp, appLogger)
	chats := chatUseCase.NewService(chatRepo, providers, bridgeClient, devices, collections, tp, appLogger, promMetrics, chatUseCase.Config{
		MaxIterations: cfg.LLM.MaxToolIterations,
		MaxTokens:     cfg.LLM.MaxTokens,
		SystemPrompt:  cfg.LLM.SystemPrompt,
	})

	// Create bootstrap admin and default packages
	if err := migration.SeedDefaults(ctx, migration.AdminAccount{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, users, packages, appLogger); err != nil {
		appLogger.Error("Failed to seed defaults", map[string]any{
			"error": err.Error(),
		})
	}

	// Background jobs
	jobs := scheduler.New(cfg.Scheduler.JobTimeout, appLogger)
	if err := jobs.Add("expire-packages", cfg.Scheduler.PackageExpirySpec, func(ctx context.Context) error {
		_, err := packages.ExpireDue(ctx)
		return err
	}); err != nil {
		appLogger.Error("Failed to schedule package expiry", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if err := jobs.Add("sync-devices", cfg.Scheduler.DeviceSyncSpec, devices.SyncAll); err != nil {
		appLogger.Error("Failed to schedule device sync", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	jobs.Start()

	// Bridge events feed running chat turns
	subscriberCtx, stopSubscriber := context.WithCancel(ctx)
	subscriber := bridge.NewSubscriber(bridgeConfig, appLogger)
	subscriber.OnEvent(chats.HandleBridgeEvent)
	subscriberDone := make(chan struct{})
	go func() {
		defer close(subscriberDone)
		subscriber.Run(subscriberCtx)
	}()

	// Initialize API handlers
	healthChecks := map[string]handler.Pinger{"database": dbManager}
	if redisClient != nil {
		healthChecks["redis"] = redisPinger{redisClient}
	}
	handlers := routes.Handlers{
		User:         handler.NewUserHandler(users, appLogger),
		Transaction:  handler.NewTransactionHandler(wallets, settings, appLogger),
		Package:      handler.NewPackageHandler(packages, wallets, appLogger),
		Notification: handler.NewNotificationHandler(notifications, appLogger),
		Device:       handler.NewDeviceHandler(devices, appLogger),
		Chat:         handler.NewChatHandler(chats, appLogger),
		Collection:   handler.NewCollectionHandler(collections, appLogger),
		Health:       handler.NewHealthHandler(healthChecks, cfg.Database.QueryTimeout, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.Server.CORSOrigins, promMetrics)

	// Setup routes
	routes.SetupRoutes(router, handlers, routes.Options{
		Issuer:      tokenIssuer,
		Accounts:    users,
		ChatLimiter: middleware.NewRateLimiter(cfg.RateLimit.ChatPerMinute, cfg.RateLimit.ChatBurst),
		Metrics:     promMetrics.Handler(),
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"providers": providers.Names(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server before the wallet manager
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down wallet manager...", nil)
	wallets.Shutdown()

	jobs.Stop(shutdownCtx)

	stopSubscriber()
	select {
	case <-subscriberDone:
	case <-shutdownCtx.Done():
	}

	appLogger.Info("Server exited gracefully", nil)
}

// llmProvider maps one vendor section of the config
func llmProvider(c config.ProviderConfig) llm.ProviderConfig {
	return llm.ProviderConfig{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Model:   c.Model,
		Timeout: c.Timeout,
	}
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	required := []struct {
		value string
		key   string
		env   string
	}{
		{cfg.Database.Host, "database.host", "AC_DB_HOST"},
		{cfg.Database.Username, "database.username", "AC_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "AC_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "AC_DB_NAME"},
		{cfg.Auth.JWTSecret, "auth.jwtSecret", "AC_JWT_SECRET"},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
		}
	}

	if cfg.Database.Port == 0 {
		missingConfigs = append(missingConfigs, "database.port (or AC_DB_PORT environment variable)")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate wallet configuration
	if cfg.Wallet.LockTimeout == 0 {
		missingConfigs = append(missingConfigs, "wallet.lockTimeout")
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}

		if cfg.Admin.Email != "" && len(cfg.Admin.Password) < 12 {
			warnings = append(warnings, "admin.password is weak for production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
