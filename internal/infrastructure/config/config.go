package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Wallet      WalletConfig    `mapstructure:"wallet"`
	LLM         LLMConfig       `mapstructure:"llm"`
	Bridge      BridgeConfig    `mapstructure:"bridge"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Admin       AdminConfig     `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database"`
	SSLMode            string        `mapstructure:"sslMode"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"`    // minutes
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"`    // minutes
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`       // seconds
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
	LogLevel           string        `mapstructure:"logLevel"`
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval    time.Duration `mapstructure:"monitorInterval"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RedisConfig contains the listing cache settings
type RedisConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	Namespace string        `mapstructure:"namespace"`
	CacheTTL  time.Duration `mapstructure:"cacheTTL"` // seconds
}

// AuthConfig contains token and password settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"` // minutes
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// WalletConfig contains wallet processing settings
type WalletConfig struct {
	LockTimeout     time.Duration `mapstructure:"lockTimeout"` // milliseconds
	QueueSize       int           `mapstructure:"queueSize"`
	DefaultCurrency string        `mapstructure:"defaultCurrency"`
}

// ProviderConfig configures one LLM vendor
type ProviderConfig struct {
	APIKey  string        `mapstructure:"apiKey"`
	BaseURL string        `mapstructure:"baseURL"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"` // seconds
}

// LLMConfig contains vendor credentials and agent loop limits
type LLMConfig struct {
	OpenAI            ProviderConfig `mapstructure:"openai"`
	Claude            ProviderConfig `mapstructure:"claude"`
	Gemini            ProviderConfig `mapstructure:"gemini"`
	MaxToolIterations int            `mapstructure:"maxToolIterations"`
	MaxTokens         int            `mapstructure:"maxTokens"`
	SystemPrompt      string         `mapstructure:"systemPrompt"`
}

// BridgeConfig locates the agent bridge
type BridgeConfig struct {
	RestURL        string        `mapstructure:"restURL"`
	WSURL          string        `mapstructure:"wsURL"`
	Timeout        time.Duration `mapstructure:"timeout"`        // seconds
	ReconnectDelay time.Duration `mapstructure:"reconnectDelay"` // seconds
}

// SchedulerConfig contains cron specs of background jobs
type SchedulerConfig struct {
	PackageExpirySpec string        `mapstructure:"packageExpirySpec"`
	DeviceSyncSpec    string        `mapstructure:"deviceSyncSpec"`
	JobTimeout        time.Duration `mapstructure:"jobTimeout"` // seconds
}

// RateLimitConfig limits chat message requests per user
type RateLimitConfig struct {
	ChatPerMinute int `mapstructure:"chatPerMinute"`
	ChatBurst     int `mapstructure:"chatBurst"`
}

// AdminConfig describes the bootstrap admin account
type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}
