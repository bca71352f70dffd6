package haptics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/haptic-kit/haptic-go/pkg/haptics"
	"github.com/haptic-kit/haptic-go/pkg/haptics/mocks"
	schedmocks "github.com/haptic-kit/haptic-go/pkg/scheduler/mocks"
)

// TestGuardShortCircuits verifies that an unsupported device stops the
// capability check early: the motor query, the intensity write and the
// timer must never happen. The mocks fail the test on any unexpected call.
func TestGuardShortCircuits(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	backend.EXPECT().SupportsDevice(haptics.DeviceRef("pad0")).Return(false).Once()

	sched := schedmocks.NewMockScheduler(t)

	ctrl := haptics.NewPulseController(backend, sched, "pad0", haptics.MotorStrong)

	pulse, err := ctrl.PlayPulse(time.Second)
	if err != nil {
		t.Fatalf("PlayPulse failed: %v", err)
	}
	if pulse != nil {
		t.Error("PlayPulse returned a pulse for an unsupported device")
	}
}

// TestCancellationFailureSwallowed verifies that a pending timer whose
// cancellation fails (Stop returns false) does not surface an error; the
// prior pulse is still completed as superseded.
func TestCancellationFailureSwallowed(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	backend.EXPECT().SupportsDevice(haptics.DeviceRef("pad0")).Return(true).Times(2)
	backend.EXPECT().SupportsMotor(haptics.DeviceRef("pad0"), haptics.MotorStrong).Return(true).Times(2)
	backend.EXPECT().SetIntensity(haptics.DeviceRef("pad0"), haptics.MotorStrong, haptics.FullIntensity).Times(2)

	firstHandle := schedmocks.NewMockHandle(t)
	firstHandle.EXPECT().Stop().Return(false).Once() // cancellation fails

	sched := schedmocks.NewMockScheduler(t)
	sched.EXPECT().After(time.Second, mock.Anything).Return(firstHandle).Once()
	sched.EXPECT().After(2*time.Second, mock.Anything).Return(schedmocks.NewMockHandle(t)).Once()

	ctrl := haptics.NewPulseController(backend, sched, "pad0", haptics.MotorStrong)

	first, err := ctrl.PlayPulse(time.Second)
	if err != nil {
		t.Fatalf("first PlayPulse failed: %v", err)
	}

	second, err := ctrl.PlayPulse(2 * time.Second)
	if err != nil {
		t.Fatalf("second PlayPulse failed: %v", err)
	}
	if second == nil {
		t.Fatal("second PlayPulse returned nil pulse")
	}

	if first.Outcome() != haptics.OutcomeSuperseded {
		t.Errorf("first Outcome = %v, want SUPERSEDED despite failed cancellation", first.Outcome())
	}
}

// TestScheduledDurationMatchesRequest verifies the stop is scheduled with
// exactly the requested duration.
func TestScheduledDurationMatchesRequest(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	backend.EXPECT().SupportsDevice(mock.Anything).Return(true).Once()
	backend.EXPECT().SupportsMotor(mock.Anything, mock.Anything).Return(true).Once()
	backend.EXPECT().SetIntensity(mock.Anything, mock.Anything, haptics.FullIntensity).Once()

	var scheduled time.Duration
	handle := schedmocks.NewMockHandle(t)
	sched := schedmocks.NewMockScheduler(t)
	sched.EXPECT().After(mock.Anything, mock.Anything).Run(func(d time.Duration, fn func()) {
		scheduled = d
	}).Return(handle).Once()

	ctrl := haptics.NewPulseController(backend, sched, "pad0", haptics.MotorWeak)

	if _, err := ctrl.PlayPulse(321 * time.Millisecond); err != nil {
		t.Fatalf("PlayPulse failed: %v", err)
	}
	if scheduled != 321*time.Millisecond {
		t.Errorf("scheduled stop after %v, want 321ms", scheduled)
	}
}
