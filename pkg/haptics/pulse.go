package haptics

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Outcome describes how a pulse ended.
type Outcome uint8

const (
	// OutcomePending indicates the pulse is still running.
	OutcomePending Outcome = 0

	// OutcomeCompleted indicates the scheduled stop fired normally.
	OutcomeCompleted Outcome = 1

	// OutcomeSuperseded indicates a newer pulse replaced this one before
	// its stop fired.
	OutcomeSuperseded Outcome = 2
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "PENDING"
	case OutcomeCompleted:
		return "COMPLETED"
	case OutcomeSuperseded:
		return "SUPERSEDED"
	default:
		return "UNKNOWN"
	}
}

// Pulse is the handle for a started pulse. It completes exactly once,
// either when the scheduled stop fires or when a newer pulse supersedes it;
// the Done channel closes at that point. A superseded pulse's Done channel
// closes immediately, so waiters are never left blocked forever.
type Pulse struct {
	id       string
	duration time.Duration
	done     chan struct{}

	mu      sync.Mutex
	outcome Outcome
}

func newPulse(duration time.Duration) *Pulse {
	return &Pulse{
		id:       uuid.New().String(),
		duration: duration,
		done:     make(chan struct{}),
	}
}

// ID returns the pulse's unique identifier, used to correlate log events.
func (p *Pulse) ID() string {
	return p.id
}

// Duration returns the requested pulse duration.
func (p *Pulse) Duration() time.Duration {
	return p.duration
}

// Done returns a channel that is closed when the pulse completes,
// normally or by supersession.
func (p *Pulse) Done() <-chan struct{} {
	return p.done
}

// Outcome returns how the pulse ended. It returns OutcomePending until the
// Done channel is closed.
func (p *Pulse) Outcome() Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome
}

// finish records the outcome and closes the Done channel.
// Only the first call has any effect.
func (p *Pulse) finish(o Outcome) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.outcome != OutcomePending {
		return false
	}
	p.outcome = o
	close(p.done)
	return true
}
