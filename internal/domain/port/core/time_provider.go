package core

import "time"

// Duration is the elapsed time reported by a TimeProvider
type Duration time.Duration

// Durations used by tests and callers that build Duration values
const (
	Millisecond = Duration(time.Millisecond)
	Second      = Duration(time.Second)
)

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock of the domain. Now must return UTC so that stored
// timestamps and the daily withdrawal window agree across hosts.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
