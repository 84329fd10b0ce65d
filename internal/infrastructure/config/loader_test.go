package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  host: db.internal
  username: console
  password: from-file
  database: agent_console
auth:
  jwtSecret: file-secret-file-secret-file-secret
  tokenTTL: 60
wallet:
  lockTimeout: 2500
llm:
  openai:
    apiKey: sk-file
    timeout: 30
`

func useConfigDir(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldPaths, oldDotEnv
	})
	t.Setenv("AC_ENV", env)
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	useConfigDir(t, Test, testYAML)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Wallet.LockTimeout)
	assert.Equal(t, "USD", cfg.Wallet.DefaultCurrency)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.OpenAI.Timeout)
	assert.Equal(t, "@every 10m", cfg.Scheduler.PackageExpirySpec)
	assert.Equal(t, "ws://127.0.0.1:3002", cfg.Bridge.WSURL)
	assert.Equal(t, 5*time.Second, cfg.Bridge.ReconnectDelay)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL, "admin listings are cached for a minute")
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	useConfigDir(t, Test, testYAML)
	t.Setenv("AC_DB_PASSWORD", "from-env")
	t.Setenv("AC_JWT_SECRET", "env-secret-env-secret-env-secret-123")
	t.Setenv("AC_CLAUDE_API_KEY", "sk-ant")
	t.Setenv("AC_REDIS_NAMESPACE", "ns-from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret-env-secret-env-secret-123", cfg.Auth.JWTSecret)
	assert.Equal(t, "sk-ant", cfg.LLM.Claude.APIKey)
	assert.Equal(t, "ns-from-env", cfg.Redis.Namespace)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	useConfigDir(t, Test, testYAML)
	require.NoError(t, os.WriteFile(DotEnvPaths[0], []byte("AC_GEMINI_API_KEY=from-dotenv\n"), 0o600))
	t.Setenv("AC_GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("AC_GEMINI_API_KEY"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.LLM.Gemini.APIKey)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	useConfigDir(t, Test, testYAML)
	t.Setenv("AC_ENV", Production)

	_, err := LoadConfig()
	assert.Error(t, err)
}
