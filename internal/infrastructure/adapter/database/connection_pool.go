package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// poolExhaustionRatio is the in-use share of MaxOpenConnections that triggers a warning
const poolExhaustionRatio = 0.8

// ConnectionPoolMonitor periodically inspects sql.DB stats and warns about pool pressure
type ConnectionPoolMonitor struct {
	db     *sql.DB
	logger coreport.Logger

	mu        sync.Mutex
	last      sql.DBStats
	cancel    context.CancelFunc
	done      chan struct{}
	startOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:     db,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start begins monitoring until Stop is called or ctx ends
func (m *ConnectionPoolMonitor) Start(ctx context.Context, interval time.Duration) {
	m.startOnce.Do(func() {
		ctx, m.cancel = context.WithCancel(ctx)
		m.collect()

		go func() {
			defer close(m.done)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					m.collect()
				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

// Stop stops the monitoring goroutine and waits for it
func (m *ConnectionPoolMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// Stats returns the most recently collected pool stats
func (m *ConnectionPoolMonitor) Stats() sql.DBStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collect() {
	stats := m.db.Stats()

	m.mu.Lock()
	prevWaits := m.last.WaitCount
	m.last = stats
	m.mu.Unlock()

	fields := map[string]any{
		"in_use":     stats.InUse,
		"idle":       stats.Idle,
		"max_open":   stats.MaxOpenConnections,
		"wait_count": stats.WaitCount,
		"wait_time":  stats.WaitDuration.String(),
	}

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolExhaustionRatio {
		m.logger.Warn("Database connection pool nearly exhausted", fields)
		return
	}
	if stats.WaitCount > prevWaits {
		fields["new_waits"] = stats.WaitCount - prevWaits
		m.logger.Info("Requests waited for a database connection", fields)
		return
	}
	m.logger.Debug("Database connection pool stats", fields)
}
