package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	applog "github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/agent-console/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func traceQuery() (string, int64) {
	return `SELECT * FROM "wallets" WHERE user_id = 7`, 1
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("errors carry the request id", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		tp := mockcore.NewMockTimeProvider(t)
		tp.On("Since", begin).Return(coreport.Duration(5 * time.Millisecond))
		coreLogger.On("Error", "SQL error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-1" && fields["type"] == "SELECT" && fields["error"] == "boom"
		})).Once()

		l := NewDatabaseLogger(coreLogger, tp, "warn", time.Second)
		ctx := applog.WithRequestID(context.Background(), "req-1")
		l.Trace(ctx, begin, traceQuery, errors.New("boom"))
	})

	t.Run("record not found is not logged at warn", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		tp := mockcore.NewMockTimeProvider(t)
		tp.On("Since", begin).Return(coreport.Duration(time.Millisecond))

		l := NewDatabaseLogger(coreLogger, tp, "warn", time.Second)
		l.Trace(context.Background(), begin, traceQuery, gorm.ErrRecordNotFound)
	})

	t.Run("slow queries warn", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		tp := mockcore.NewMockTimeProvider(t)
		tp.On("Since", begin).Return(coreport.Duration(2 * time.Second))
		coreLogger.On("Warn", "Slow SQL query", mock.Anything).Once()

		l := NewDatabaseLogger(coreLogger, tp, "warn", time.Second)
		l.Trace(context.Background(), begin, traceQuery, nil)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		tp := mockcore.NewMockTimeProvider(t)

		l := NewDatabaseLogger(coreLogger, tp, "silent", time.Second)
		l.Trace(context.Background(), begin, traceQuery, errors.New("boom"))
	})
}

func TestDatabaseLogger_LogMode(t *testing.T) {
	coreLogger := mockcore.NewMockLogger(t)
	coreLogger.On("Info", "connected to db", mock.Anything).Once()

	l := NewDatabaseLogger(coreLogger, nil, "error", 0)
	l.Info(context.Background(), "connected to %s", "db")
	l.LogMode(logger.Info).Info(context.Background(), "connected to %s", "db")
}

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "UPDATE", extractQueryType(`  update "wallets" set balance = 1`))
	assert.Equal(t, "SET", extractQueryType(`SET LOCAL lock_timeout = '3000ms'`))
	assert.Equal(t, "", extractQueryType(`WITH x AS (SELECT 1) SELECT * FROM x`))
}

func TestConfig_DSNAndValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "console"
	cfg.Database = "agent_console"
	cfg.Password = "secret"
	assert.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.DSN(), "TimeZone=UTC")
	assert.Contains(t, cfg.DSN(), "password=secret")

	cfg.Port = 0
	assert.Error(t, cfg.Validate())
}
