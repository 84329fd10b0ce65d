package wallet

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// DefaultQueueSize is the per-user buffer used when none is configured
const DefaultQueueSize = 100

// WalletOperation is one unit of work executed on a user's queue
type WalletOperation func(ctx context.Context) error

// WalletManager provides sequential processing of wallet operations per user.
// Operations of one user never overlap, operations of different users run concurrently.
type WalletManager struct {
	logger    coreport.Logger
	queueSize int

	// User-based operation queues for strict ordering
	userQueues     sync.Map // map[uint64]chan *queuedOperation
	queueWaitGroup sync.WaitGroup

	// mu guards closed and keeps Shutdown from closing a queue while it is being sent to
	mu     sync.RWMutex
	closed bool
}

// queuedOperation represents a queued wallet operation
type queuedOperation struct {
	ctx        context.Context
	label      string
	op         WalletOperation
	resultChan chan error
}

// NewWalletManager creates a new wallet manager
func NewWalletManager(logger coreport.Logger, queueSize int) *WalletManager {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &WalletManager{
		logger:    logger,
		queueSize: queueSize,
	}
}

// Execute runs op on the user's queue and waits for its result
func (m *WalletManager) Execute(ctx context.Context, userID uint64, label string, op WalletOperation) error {
	if op == nil {
		return errs.ErrInternalServer
	}

	m.logger.Debug("Enqueuing wallet operation", map[string]any{
		"user_id":   userID,
		"operation": label,
	})

	resultChan := make(chan error, 1)
	req := &queuedOperation{ctx: ctx, label: label, op: op, resultChan: resultChan}

	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return errs.ErrWalletBusy
	}

	queueIface, loaded := m.userQueues.LoadOrStore(userID, make(chan *queuedOperation, m.queueSize))
	queue, ok := queueIface.(chan *queuedOperation)
	if !ok {
		m.mu.RUnlock()
		m.logger.Error("Failed to type assert queue channel", nil)
		return errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		m.logger.Info("Starting new wallet queue worker for user", map[string]any{
			"user_id": userID,
		})
		m.queueWaitGroup.Add(1)
		go m.processUserOperations(userID, queue)
	}

	select {
	case queue <- req:
		m.mu.RUnlock()
	case <-ctx.Done():
		m.mu.RUnlock()
		m.logger.Warn("Context canceled while enqueueing wallet operation", map[string]any{
			"user_id":   userID,
			"operation": label,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-resultChan:
		return err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for wallet operation", map[string]any{
			"user_id":   userID,
			"operation": label,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// processUserOperations handles the worker goroutine for a user's queue
func (m *WalletManager) processUserOperations(userID uint64, queue chan *queuedOperation) {
	defer m.queueWaitGroup.Done()

	for req := range queue {
		// The caller gave up before its turn came
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- err
			continue
		}

		m.logger.Debug("Processing queued wallet operation", map[string]any{
			"user_id":   userID,
			"operation": req.label,
		})
		req.resultChan <- req.op(req.ctx)
	}

	m.logger.Info("Wallet queue worker stopped", map[string]any{
		"user_id": userID,
	})
}

// Shutdown stops accepting operations, drains the queues and waits for the workers
func (m *WalletManager) Shutdown() {
	m.logger.Info("Shutting down wallet manager", nil)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.userQueues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *queuedOperation); ok {
			close(queue)
		}
		return true
	})
	m.mu.Unlock()

	m.queueWaitGroup.Wait()
	m.logger.Info("Wallet manager shut down successfully", nil)
}
