package haptics

// DeviceRef identifies the input device or channel a motor belongs to,
// e.g. a gamepad slot. Values are opaque to this package; the backend
// defines what they mean.
type DeviceRef string

// MotorRef selects a motor within a device.
type MotorRef uint8

// Motor selectors for the common dual-rumble gamepad layout.
const (
	// MotorStrong is the low-frequency, high-amplitude rumble motor.
	MotorStrong MotorRef = 0x00

	// MotorWeak is the high-frequency, low-amplitude rumble motor.
	MotorWeak MotorRef = 0x01
)

// String returns the motor selector name.
func (m MotorRef) String() string {
	switch m {
	case MotorStrong:
		return "STRONG"
	case MotorWeak:
		return "WEAK"
	default:
		return "UNKNOWN"
	}
}

// Backend is the host-provided haptic service a controller talks to.
//
// The host service is typically process-wide state; it is injected here as
// an interface so tests can substitute it. Implementations must be safe for
// concurrent use. There is no error channel: capability queries answer
// false for anything the host cannot drive, and intensity writes to
// unsupported motors are expected to be ignored by the host.
type Backend interface {
	// SupportsDevice reports whether the device can vibrate at all.
	SupportsDevice(device DeviceRef) bool

	// SupportsMotor reports whether the given motor exists on the device.
	SupportsMotor(device DeviceRef, motor MotorRef) bool

	// Intensity returns the last intensity written to the motor.
	// ok is false if no intensity was ever set.
	Intensity(device DeviceRef, motor MotorRef) (value float64, ok bool)

	// SetIntensity sets the motor intensity. 0 stops the motor;
	// FullIntensity drives it at full scale.
	SetIntensity(device DeviceRef, motor MotorRef, value float64)
}
