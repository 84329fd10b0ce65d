package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "AC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

var errNoDotEnv = errors.New("no .env file found in search paths")

// envBindings maps short, documented variable names to config keys.
// Every other key can still be set through AC_<SECTION>_<KEY>.
var envBindings = map[string]string{
	"database.host":               "AC_DB_HOST",
	"database.port":               "AC_DB_PORT",
	"database.username":           "AC_DB_USERNAME",
	"database.password":           "AC_DB_PASSWORD",
	"database.database":           "AC_DB_NAME",
	"database.sslMode":            "AC_DB_SSL_MODE",
	"database.maxOpenConns":       "AC_DB_MAX_OPEN_CONNS",
	"database.maxIdleConns":       "AC_DB_MAX_IDLE_CONNS",
	"server.host":                 "AC_SERVER_HOST",
	"server.port":                 "AC_SERVER_PORT",
	"logger.level":                "AC_LOGGER_LEVEL",
	"logger.format":               "AC_LOGGER_FORMAT",
	"redis.enabled":               "AC_REDIS_ENABLED",
	"redis.addr":                  "AC_REDIS_ADDR",
	"redis.password":              "AC_REDIS_PASSWORD",
	"auth.jwtSecret":              "AC_JWT_SECRET",
	"auth.tokenTTL":               "AC_JWT_TTL_MINUTES",
	"wallet.lockTimeout":          "AC_WALLET_LOCK_TIMEOUT_MS",
	"llm.openai.apiKey":           "AC_OPENAI_API_KEY",
	"llm.openai.model":            "AC_OPENAI_MODEL",
	"llm.claude.apiKey":           "AC_CLAUDE_API_KEY",
	"llm.claude.model":            "AC_CLAUDE_MODEL",
	"llm.gemini.apiKey":           "AC_GEMINI_API_KEY",
	"llm.gemini.model":            "AC_GEMINI_MODEL",
	"bridge.restURL":              "AC_BRIDGE_REST_URL",
	"bridge.wsURL":                "AC_BRIDGE_WS_URL",
	"admin.email":                 "AC_ADMIN_EMAIL",
	"admin.password":              "AC_ADMIN_PASSWORD",
	"scheduler.deviceSyncSpec":    "AC_DEVICE_SYNC_SPEC",
	"rateLimit.chatPerMinute":     "AC_CHAT_RATE_PER_MINUTE",
	"scheduler.packageExpirySpec": "AC_PACKAGE_EXPIRY_SPEC",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Variables already present in the process win over .env values
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvOverrides(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 120)     // seconds, chat turns wait on LLM vendors
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 15)   // seconds
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)     // minutes
	v.SetDefault("database.connMaxIdleTime", 15)     // minutes
	v.SetDefault("database.queryTimeout", 10)        // seconds
	v.SetDefault("database.slowQueryThreshold", 200) // milliseconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2)       // seconds
	v.SetDefault("database.monitorInterval", 30) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.namespace", "agent-console")
	v.SetDefault("redis.cacheTTL", 60) // seconds

	v.SetDefault("auth.tokenTTL", 24*60) // minutes
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("wallet.lockTimeout", 5000) // milliseconds
	v.SetDefault("wallet.queueSize", 100)
	v.SetDefault("wallet.defaultCurrency", "USD")

	v.SetDefault("llm.openai.model", "gpt-4o")
	v.SetDefault("llm.openai.timeout", 60)
	v.SetDefault("llm.claude.model", "claude-3-5-sonnet-latest")
	v.SetDefault("llm.claude.timeout", 60)
	v.SetDefault("llm.gemini.model", "gemini-1.5-flash")
	v.SetDefault("llm.gemini.timeout", 60)
	v.SetDefault("llm.maxToolIterations", 10)
	v.SetDefault("llm.maxTokens", 4096)

	v.SetDefault("bridge.restURL", "http://127.0.0.1:3001")
	v.SetDefault("bridge.wsURL", "ws://127.0.0.1:3002")
	v.SetDefault("bridge.timeout", 30)       // seconds
	v.SetDefault("bridge.reconnectDelay", 5) // seconds

	v.SetDefault("scheduler.packageExpirySpec", "@every 10m")
	v.SetDefault("scheduler.deviceSyncSpec", "@every 5m")
	v.SetDefault("scheduler.jobTimeout", 60) // seconds

	v.SetDefault("rateLimit.chatPerMinute", 20)
	v.SetDefault("rateLimit.chatBurst", 5)

	v.SetDefault("admin.name", "Administrator")
}

// getEnvironment determines the environment from AC_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// bindEnvOverrides registers the short variable names so they override file values
func bindEnvOverrides(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("binding %s to %s: %w", env, key, err)
		}
	}
	return nil
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.SlowQueryThreshold *= time.Millisecond
	config.Database.RetryDelay *= time.Second
	config.Database.MonitorInterval *= time.Second

	config.Redis.CacheTTL *= time.Second
	config.Auth.TokenTTL *= time.Minute
	config.Wallet.LockTimeout *= time.Millisecond

	config.LLM.OpenAI.Timeout *= time.Second
	config.LLM.Claude.Timeout *= time.Second
	config.LLM.Gemini.Timeout *= time.Second

	config.Bridge.Timeout *= time.Second
	config.Bridge.ReconnectDelay *= time.Second
	config.Scheduler.JobTimeout *= time.Second
}
