package time

import (
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock in UTC
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}
