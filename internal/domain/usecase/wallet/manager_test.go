package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
)

func TestNewWalletManager(t *testing.T) {
	t.Run("Default queue size", func(t *testing.T) {
		m := NewWalletManager(newTestLogger(t), 0)
		assert.Equal(t, DefaultQueueSize, m.queueSize)
	})

	t.Run("Nil operation", func(t *testing.T) {
		m := NewWalletManager(newTestLogger(t), 1)
		assert.ErrorIs(t, m.Execute(context.Background(), 1, "noop", nil), errs.ErrInternalServer)
	})
}

func TestWalletManager_Execute(t *testing.T) {
	t.Run("Returns the operation error", func(t *testing.T) {
		m := NewWalletManager(newTestLogger(t), 10)
		defer m.Shutdown()

		err := m.Execute(context.Background(), 123, "debit", func(ctx context.Context) error {
			return errs.ErrInsufficientBalance
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("Operations of one user never overlap", func(t *testing.T) {
		m := NewWalletManager(newTestLogger(t), 10)
		defer m.Shutdown()

		var mu sync.Mutex
		running := 0
		maxRunning := 0
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := m.Execute(context.Background(), 123, "credit", func(ctx context.Context) error {
					mu.Lock()
					running++
					if running > maxRunning {
						maxRunning = running
					}
					mu.Unlock()

					time.Sleep(5 * time.Millisecond)

					mu.Lock()
					running--
					mu.Unlock()
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxRunning)
	})

	t.Run("Multiple users processed concurrently", func(t *testing.T) {
		m := NewWalletManager(newTestLogger(t), 10)
		defer m.Shutdown()

		// Each operation waits for the other user's operation to start
		started := map[uint64]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})}
		other := map[uint64]uint64{1: 2, 2: 1}

		var wg sync.WaitGroup
		errCh := make(chan error, 2)
		for _, userID := range []uint64{1, 2} {
			wg.Add(1)
			go func(userID uint64) {
				defer wg.Done()
				errCh <- m.Execute(context.Background(), userID, "credit", func(ctx context.Context) error {
					close(started[userID])
					select {
					case <-started[other[userID]]:
						return nil
					case <-time.After(time.Second):
						return errors.New("operations were serialized across users")
					}
				})
			}(userID)
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			require.NoError(t, err)
		}
	})

	t.Run("Context cancellation during enqueueing", func(t *testing.T) {
		m := NewWalletManager(newTestLogger(t), 10)
		defer m.Shutdown()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := m.Execute(ctx, 123, "credit", func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestWalletManager_Shutdown(t *testing.T) {
	m := NewWalletManager(newTestLogger(t), 10)

	require.NoError(t, m.Execute(context.Background(), 1, "credit", func(ctx context.Context) error { return nil }))

	done := make(chan struct{})
	go func() {
		m.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Shutdown did not return")
	}

	err := m.Execute(context.Background(), 1, "credit", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, errs.ErrWalletBusy)

	// Second shutdown is a no-op
	m.Shutdown()
}
