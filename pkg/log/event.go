package log

import (
	"time"
)

// Event represents a haptic log event emitted by a pulse controller.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ControllerID uniquely identifies the emitting controller (UUID).
	ControllerID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Device is the input device/channel the motor belongs to.
	Device string `cbor:"4,keyasint,omitempty"`

	// Motor is the motor selector within the device.
	Motor uint8 `cbor:"5,keyasint"`

	// PulseID correlates events belonging to the same pulse (UUID).
	// Empty for events outside a pulse cycle.
	PulseID string `cbor:"6,keyasint,omitempty"`

	// Intensity is the motor intensity written, if the event wrote one.
	Intensity *float64 `cbor:"7,keyasint,omitempty"`

	// PulseDuration is the requested pulse duration, for pulse events.
	PulseDuration *time.Duration `cbor:"8,keyasint,omitempty"`

	// Reason carries additional context (e.g. why a pulse was rejected).
	Reason string `cbor:"9,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryPulseStart indicates a pulse activated the motor.
	CategoryPulseStart Category = 0
	// CategoryPulseStop indicates a scheduled stop fired.
	CategoryPulseStop Category = 1
	// CategoryPulseSuperseded indicates a pending pulse was replaced.
	CategoryPulseSuperseded Category = 2
	// CategoryPulseRejected indicates a pulse was dropped (capability absent).
	CategoryPulseRejected Category = 3
	// CategoryIntensityChange indicates a direct intensity write.
	CategoryIntensityChange Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPulseStart:
		return "PULSE_START"
	case CategoryPulseStop:
		return "PULSE_STOP"
	case CategoryPulseSuperseded:
		return "PULSE_SUPERSEDED"
	case CategoryPulseRejected:
		return "PULSE_REJECTED"
	case CategoryIntensityChange:
		return "INTENSITY_CHANGE"
	default:
		return "UNKNOWN"
	}
}
