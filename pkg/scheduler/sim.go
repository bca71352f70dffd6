package scheduler

import (
	"sync"
	"time"
)

// Sim is a deterministic scheduler driven by a virtual clock.
// Time only moves when Advance is called; callbacks whose deadline falls
// within the advanced window fire synchronously inside Advance, ordered by
// deadline and then by scheduling order.
//
// Sim never fires a callback from within After, so callers may hold locks
// that the callback also takes while scheduling.
type Sim struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*simTimer
}

type simTimer struct {
	owner   *Sim
	at      time.Duration
	seq     uint64
	fn      func()
	fired   bool
	stopped bool
}

// NewSim creates a simulated scheduler with the virtual clock at zero.
func NewSim() *Sim {
	return &Sim{}
}

// Now returns the current virtual time (elapsed since creation).
func (s *Sim) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// After schedules fn to fire once the virtual clock reaches now+d.
// Non-positive delays fire on the next Advance call, including Advance(0).
func (s *Sim) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &simTimer{
		owner: s,
		at:    s.now + d,
		seq:   s.seq,
		fn:    fn,
	}
	s.seq++
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the virtual clock forward by d, firing every due callback.
// Callbacks run synchronously on the calling goroutine, outside the
// scheduler lock, so they may schedule further timers; a timer scheduled
// during Advance fires in the same call if its deadline is within range.
func (s *Sim) Advance(d time.Duration) {
	if d < 0 {
		return
	}

	s.mu.Lock()
	target := s.now + d

	for {
		next := s.nextDueLocked(target)
		if next == nil {
			break
		}
		if next.at > s.now {
			s.now = next.at
		}
		next.fired = true
		fn := next.fn

		// Run the callback outside the lock; it may call After or Stop.
		s.mu.Unlock()
		fn()
		s.mu.Lock()
	}

	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of scheduled callbacks that have neither fired
// nor been stopped.
func (s *Sim) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.pending {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// nextDueLocked finds the earliest live timer due at or before target and
// removes it from the pending list. Equal deadlines break by scheduling order.
func (s *Sim) nextDueLocked(target time.Duration) *simTimer {
	best := -1
	for i, t := range s.pending {
		if t.fired || t.stopped || t.at > target {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := s.pending[best]
		if t.at < b.at || (t.at == b.at && t.seq < b.seq) {
			best = i
		}
	}
	if best == -1 {
		// Drop timers that can never fire again.
		s.compactLocked()
		return nil
	}

	t := s.pending[best]
	s.pending = append(s.pending[:best], s.pending[best+1:]...)
	return t
}

// compactLocked removes stopped timers from the pending list.
func (s *Sim) compactLocked() {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.pending = live
}

// Stop cancels the timer. Returns false if it already fired or was stopped.
func (t *simTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Compile-time interface satisfaction check.
var _ Scheduler = (*Sim)(nil)
