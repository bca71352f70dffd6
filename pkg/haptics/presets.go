package haptics

import (
	"context"
	"time"
)

// Preset is a named pulse configuration. Presets carry no state; playing
// one is equivalent to playing a pulse with the preset's duration.
type Preset struct {
	// Name identifies the preset, e.g. in preset library files.
	Name string

	// Duration is the pulse duration the preset plays.
	Duration time.Duration
}

// Built-in presets.
var (
	// ShortVibration is a brief tick, suitable for UI feedback.
	ShortVibration = Preset{Name: "short", Duration: 25 * time.Millisecond}

	// LongVibration is a full one-second rumble.
	LongVibration = Preset{Name: "long", Duration: time.Second}
)

// BuiltinPresets returns the presets every preset library starts with.
func BuiltinPresets() []Preset {
	return []Preset{ShortVibration, LongVibration}
}

// PlayPreset plays the preset's pulse. Semantics match PlayPulse.
func (c *PulseController) PlayPreset(p Preset) (*Pulse, error) {
	return c.PlayPulse(p.Duration)
}

// PlayPresetWait plays the preset's pulse and waits until it completes.
// Semantics match PlayPulseWait.
func (c *PulseController) PlayPresetWait(ctx context.Context, p Preset) error {
	return c.PlayPulseWait(ctx, p.Duration)
}
