package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig(retries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    retries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
		JitterFactor:  0.1,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	log := logger.NewNoopLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(3), func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		calls := 0
		permanent := errors.New("password authentication failed")
		err := RetryOnTransientError(context.Background(), fastRetryConfig(5), func() error {
			calls++
			return permanent
		}, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(2), func() error {
			calls++
			return errors.New("connection reset by peer")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := fastRetryConfig(5)
		cfg.RetryInterval = time.Second
		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("connection reset by peer")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.2}

	first := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)

	capped := calculateBackoffWithJitter(10, cfg)
	assert.LessOrEqual(t, capped, 1200*time.Millisecond)
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, isTransientError(errors.New("unexpected EOF")))
	assert.True(t, isTransientError(errors.New("FATAL: the database system is starting up")))
	assert.False(t, isTransientError(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, isTransientError(nil))
}
