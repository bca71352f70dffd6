package examples

import (
	"sync"
	"time"

	"github.com/haptic-kit/haptic-go/pkg/haptics"
)

// IntensityWrite records a single SetIntensity call on a SimBackend.
type IntensityWrite struct {
	// At is when the write happened (process clock).
	At time.Time

	// Device is the target device reference.
	Device haptics.DeviceRef

	// Motor is the target motor selector.
	Motor haptics.MotorRef

	// Value is the intensity written.
	Value float64
}

// SimBackend is an in-memory haptics.Backend for tests and demos.
//
// Devices and motors must be registered with AddMotor before they report as
// supported; support can then be toggled per device and per motor to
// exercise the capability-absent paths. Every SetIntensity call is recorded
// in a journal regardless of support flags, so tests can assert that a
// no-op path wrote nothing.
//
// SimBackend is safe for concurrent use.
type SimBackend struct {
	mu      sync.RWMutex
	devices map[haptics.DeviceRef]*simDevice
	journal []IntensityWrite
}

type simDevice struct {
	supported bool
	motors    map[haptics.MotorRef]*simMotor
}

type simMotor struct {
	supported bool
	intensity float64
	written   bool
}

// NewSimBackend creates an empty simulated backend.
func NewSimBackend() *SimBackend {
	return &SimBackend{
		devices: make(map[haptics.DeviceRef]*simDevice),
	}
}

// AddMotor registers a motor (and its device, if new) as supported.
func (b *SimBackend) AddMotor(device haptics.DeviceRef, motor haptics.MotorRef) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.devices[device]
	if d == nil {
		d = &simDevice{
			supported: true,
			motors:    make(map[haptics.MotorRef]*simMotor),
		}
		b.devices[device] = d
	}
	if d.motors[motor] == nil {
		d.motors[motor] = &simMotor{supported: true}
	}
}

// SetDeviceSupported toggles vibration support for a registered device.
func (b *SimBackend) SetDeviceSupported(device haptics.DeviceRef, supported bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d := b.devices[device]; d != nil {
		d.supported = supported
	}
}

// SetMotorSupported toggles support for a registered motor.
func (b *SimBackend) SetMotorSupported(device haptics.DeviceRef, motor haptics.MotorRef, supported bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if d := b.devices[device]; d != nil {
		if m := d.motors[motor]; m != nil {
			m.supported = supported
		}
	}
}

// SupportsDevice reports whether the device is registered and supported.
func (b *SimBackend) SupportsDevice(device haptics.DeviceRef) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d := b.devices[device]
	return d != nil && d.supported
}

// SupportsMotor reports whether the motor is registered and supported.
func (b *SimBackend) SupportsMotor(device haptics.DeviceRef, motor haptics.MotorRef) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d := b.devices[device]
	if d == nil {
		return false
	}
	m := d.motors[motor]
	return m != nil && m.supported
}

// Intensity returns the last intensity written to the motor.
// ok is false if no intensity was ever set.
func (b *SimBackend) Intensity(device haptics.DeviceRef, motor haptics.MotorRef) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d := b.devices[device]
	if d == nil {
		return 0, false
	}
	m := d.motors[motor]
	if m == nil || !m.written {
		return 0, false
	}
	return m.intensity, true
}

// SetIntensity records the write in the journal and stores the value on the
// motor, creating device/motor entries (unsupported) as needed. Capability
// gating is the controller's job, not the backend's.
func (b *SimBackend) SetIntensity(device haptics.DeviceRef, motor haptics.MotorRef, value float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.devices[device]
	if d == nil {
		d = &simDevice{motors: make(map[haptics.MotorRef]*simMotor)}
		b.devices[device] = d
	}
	m := d.motors[motor]
	if m == nil {
		m = &simMotor{}
		d.motors[motor] = m
	}
	m.intensity = value
	m.written = true

	b.journal = append(b.journal, IntensityWrite{
		At:     time.Now(),
		Device: device,
		Motor:  motor,
		Value:  value,
	})
}

// Writes returns a copy of the intensity write journal.
func (b *SimBackend) Writes() []IntensityWrite {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]IntensityWrite, len(b.journal))
	copy(out, b.journal)
	return out
}

// ClearWrites empties the journal. Support flags and intensities are kept.
func (b *SimBackend) ClearWrites() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = nil
}

// Compile-time interface satisfaction check.
var _ haptics.Backend = (*SimBackend)(nil)
