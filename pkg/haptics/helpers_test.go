package haptics_test

import (
	"sync"

	hlog "github.com/haptic-kit/haptic-go/pkg/log"
)

// captureLogger records emitted events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []hlog.Event
}

func (c *captureLogger) Log(event hlog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) snapshot() []hlog.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]hlog.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *captureLogger) categories() []hlog.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]hlog.Category, 0, len(c.events))
	for _, ev := range c.events {
		out = append(out, ev.Category)
	}
	return out
}
