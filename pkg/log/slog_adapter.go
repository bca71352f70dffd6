package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes haptic events to an slog.Logger.
// Useful for development when you want to see motor activity in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("controller_id", event.ControllerID),
		slog.String("category", event.Category.String()),
		slog.String("device", event.Device),
		slog.Uint64("motor", uint64(event.Motor)),
	}

	if event.PulseID != "" {
		attrs = append(attrs, slog.String("pulse_id", event.PulseID))
	}
	if event.Intensity != nil {
		attrs = append(attrs, slog.Float64("intensity", *event.Intensity))
	}
	if event.PulseDuration != nil {
		attrs = append(attrs, slog.Duration("pulse_duration", *event.PulseDuration))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "haptic event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
