// Package haptics drives gamepad vibration motors through timed pulses.
//
// A PulseController wraps a single logical motor, identified by a device
// reference and a motor selector, and talks to the host's haptic service
// through the injected Backend interface. Delayed motor stops run on an
// injected scheduler.Scheduler, so tests can drive time deterministically.
//
// # Pulses
//
// PlayPulse sets the motor to full intensity and schedules a stop after the
// requested duration. At most one stop is pending per controller: starting
// a new pulse cancels the pending stop (best-effort) and completes the prior
// pulse as superseded. Capability absence is not an error - when the backend
// reports the device or motor as unsupported, PlayPulse is a silent no-op.
//
// PlayPulse returns immediately with a *Pulse handle; callers that want the
// blocking behaviour wait on Pulse.Done or use PlayPulseWait:
//
//	ctrl := haptics.NewPulseController(backend, sched, "gamepad0", haptics.MotorStrong)
//	if err := ctrl.PlayPulseWait(ctx, 250*time.Millisecond); err != nil {
//	    // ErrSuperseded: another pulse replaced this one before it finished
//	}
//
// # Presets
//
// ShortVibration and LongVibration are the built-in presets; applications
// can define more (see package patterns for YAML-defined preset libraries)
// and play them via PlayPreset / PlayPresetWait.
package haptics
