package haptics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	hlog "github.com/haptic-kit/haptic-go/pkg/log"
	"github.com/haptic-kit/haptic-go/pkg/scheduler"
)

// FullIntensity is the intensity a pulse drives the motor at.
const FullIntensity = 1.0

// Pulse errors.
var (
	// ErrInvalidDuration is returned for zero or negative pulse durations.
	ErrInvalidDuration = errors.New("invalid pulse duration")

	// ErrSuperseded is returned by the blocking calls when a newer pulse
	// replaced the awaited one before its stop fired.
	ErrSuperseded = errors.New("pulse superseded by a newer pulse")
)

// PulseController drives a single motor through timed activation cycles.
//
// A controller owns at most one pending stop timer. Starting a new pulse
// cancels the pending stop (best-effort) and completes the prior pulse as
// superseded. Manual Stop does NOT cancel a pending timer; the timer fires
// later and re-invokes stop, which is idempotent and harmless.
//
// All methods are safe for concurrent use, though controllers are normally
// driven from a single goroutine. Two controllers targeting the same
// physical motor are not coordinated; behaviour is then undefined.
type PulseController struct {
	backend Backend
	sched   scheduler.Scheduler
	id      string
	device  DeviceRef
	motor   MotorRef

	mu      sync.Mutex
	logger  hlog.Logger
	pending *pendingStop
}

// pendingStop ties a scheduled stop to the pulse it will complete.
type pendingStop struct {
	pulse  *Pulse
	handle scheduler.Handle
}

// NewPulseController creates a controller for the given motor.
// If sched is nil, a standard clock-backed scheduler is used.
// Event logging is disabled until SetEventLogger is called.
func NewPulseController(backend Backend, sched scheduler.Scheduler, device DeviceRef, motor MotorRef) *PulseController {
	if sched == nil {
		sched = scheduler.NewStd()
	}
	return &PulseController{
		backend: backend,
		sched:   sched,
		id:      uuid.New().String(),
		device:  device,
		motor:   motor,
		logger:  hlog.NoopLogger{},
	}
}

// SetEventLogger sets the haptic event logger. Pass nil to disable logging.
func (c *PulseController) SetEventLogger(l hlog.Logger) {
	if l == nil {
		l = hlog.NoopLogger{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

// ID returns the controller's unique identifier, used in log events.
func (c *PulseController) ID() string {
	return c.id
}

// Device returns the device reference the controller targets.
func (c *PulseController) Device() DeviceRef {
	return c.device
}

// Motor returns the motor selector the controller targets.
func (c *PulseController) Motor() MotorRef {
	return c.motor
}

// VibrationSupported reports whether the device can vibrate at all.
func (c *PulseController) VibrationSupported() bool {
	return c.backend.SupportsDevice(c.device)
}

// MotorSupported reports whether the controller's motor exists on the device.
func (c *PulseController) MotorSupported() bool {
	return c.backend.SupportsMotor(c.device, c.motor)
}

// Intensity returns the last intensity written to the motor.
// ok is false if no intensity was ever set.
func (c *PulseController) Intensity() (value float64, ok bool) {
	return c.backend.Intensity(c.device, c.motor)
}

// Stop sets the motor intensity to zero.
//
// Stop does not cancel a pending stop timer; only a new pulse does that.
// A timer left pending fires later and stops the (already stopped) motor
// again, which is harmless.
func (c *PulseController) Stop() {
	c.backend.SetIntensity(c.device, c.motor, 0)

	zero := 0.0
	c.emit(hlog.Event{
		Category:  hlog.CategoryIntensityChange,
		Intensity: &zero,
		Reason:    "stop",
	})
}

// PlayPulse activates the motor at full intensity and schedules a stop
// after d. It returns immediately; wait on the returned Pulse's Done
// channel for completion.
//
// If the device or motor is unsupported the call is a silent no-op and
// returns (nil, nil). A pending pulse is cancelled best-effort and
// completed as superseded. Zero or negative durations are rejected with
// ErrInvalidDuration.
func (c *PulseController) PlayPulse(d time.Duration) (*Pulse, error) {
	if d <= 0 {
		return nil, ErrInvalidDuration
	}

	if !c.VibrationSupported() || !c.MotorSupported() {
		c.emit(hlog.Event{
			Category:      hlog.CategoryPulseRejected,
			PulseDuration: &d,
			Reason:        "capability absent",
		})
		return nil, nil
	}

	var superseded *Pulse

	c.mu.Lock()
	if c.pending != nil {
		// Best-effort cancellation; a stop that already fired is detected
		// in expire and does nothing.
		c.pending.handle.Stop()
		superseded = c.pending.pulse
		c.pending = nil
	}

	pulse := newPulse(d)
	c.backend.SetIntensity(c.device, c.motor, FullIntensity)

	ps := &pendingStop{pulse: pulse}
	ps.handle = c.sched.After(d, func() { c.expire(ps) })
	c.pending = ps
	c.mu.Unlock()

	if superseded != nil {
		superseded.finish(OutcomeSuperseded)
		c.emit(hlog.Event{
			Category: hlog.CategoryPulseSuperseded,
			PulseID:  superseded.id,
		})
	}

	full := FullIntensity
	c.emit(hlog.Event{
		Category:      hlog.CategoryPulseStart,
		PulseID:       pulse.id,
		Intensity:     &full,
		PulseDuration: &d,
	})
	return pulse, nil
}

// PlayPulseWait plays a pulse and waits until it completes.
//
// It returns nil when the pulse ran to completion, ErrSuperseded when a
// newer pulse replaced it, and ctx.Err() if the context ends first. A
// context cancellation abandons the wait only; the scheduled motor stop
// still fires. Capability absence returns nil immediately (no-op).
func (c *PulseController) PlayPulseWait(ctx context.Context, d time.Duration) error {
	pulse, err := c.PlayPulse(d)
	if err != nil {
		return err
	}
	if pulse == nil {
		return nil
	}

	select {
	case <-pulse.Done():
		if pulse.Outcome() == OutcomeSuperseded {
			return ErrSuperseded
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// expire is the scheduled stop callback for a pulse.
func (c *PulseController) expire(ps *pendingStop) {
	c.mu.Lock()
	if c.pending != ps {
		// A newer pulse took over the slot between firing and locking;
		// the motor belongs to it now.
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.backend.SetIntensity(c.device, c.motor, 0)
	c.mu.Unlock()

	ps.pulse.finish(OutcomeCompleted)

	zero := 0.0
	c.emit(hlog.Event{
		Category:  hlog.CategoryPulseStop,
		PulseID:   ps.pulse.id,
		Intensity: &zero,
	})
}

// emit fills in the controller fields and sends the event to the logger.
func (c *PulseController) emit(ev hlog.Event) {
	c.mu.Lock()
	logger := c.logger
	c.mu.Unlock()

	ev.Timestamp = time.Now()
	ev.ControllerID = c.id
	ev.Device = string(c.device)
	ev.Motor = uint8(c.motor)
	logger.Log(ev)
}
