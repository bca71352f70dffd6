package scheduler

import "time"

// Handle references a scheduled callback and allows best-effort cancellation.
type Handle interface {
	// Stop cancels the scheduled callback.
	// It returns false if the callback already fired or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
// Implementations must be safe for concurrent use.
type Scheduler interface {
	// After schedules fn to run once after d has elapsed.
	// The callback may run on a different goroutine than the caller.
	After(d time.Duration, fn func()) Handle
}
