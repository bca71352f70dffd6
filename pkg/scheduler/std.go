package scheduler

import "time"

// Std schedules callbacks on the process clock using time.AfterFunc.
// The zero value is ready to use.
type Std struct{}

// NewStd creates a standard clock-backed scheduler.
func NewStd() *Std {
	return &Std{}
}

// After schedules fn to run once after d has elapsed.
func (s *Std) After(d time.Duration, fn func()) Handle {
	return &stdHandle{timer: time.AfterFunc(d, fn)}
}

type stdHandle struct {
	timer *time.Timer
}

// Stop cancels the pending callback. Returns false if it already fired.
func (h *stdHandle) Stop() bool {
	return h.timer.Stop()
}

// Compile-time interface satisfaction check.
var _ Scheduler = (*Std)(nil)
