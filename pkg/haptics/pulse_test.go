package haptics

import (
	"testing"
	"time"
)

func TestPulseFinishOnce(t *testing.T) {
	p := newPulse(time.Second)

	if p.Outcome() != OutcomePending {
		t.Errorf("Outcome = %v for a fresh pulse, want PENDING", p.Outcome())
	}
	select {
	case <-p.Done():
		t.Fatal("Done channel closed before finish")
	default:
	}

	if !p.finish(OutcomeCompleted) {
		t.Error("first finish returned false")
	}
	if p.finish(OutcomeSuperseded) {
		t.Error("second finish returned true")
	}

	// The first outcome wins
	if p.Outcome() != OutcomeCompleted {
		t.Errorf("Outcome = %v, want COMPLETED", p.Outcome())
	}
	select {
	case <-p.Done():
	default:
		t.Error("Done channel not closed after finish")
	}
}

func TestPulseAccessors(t *testing.T) {
	p := newPulse(250 * time.Millisecond)

	if p.Duration() != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", p.Duration())
	}
	if p.ID() == "" {
		t.Error("ID is empty")
	}
	if other := newPulse(time.Second); other.ID() == p.ID() {
		t.Error("two pulses share an ID")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomePending, "PENDING"},
		{OutcomeCompleted, "COMPLETED"},
		{OutcomeSuperseded, "SUPERSEDED"},
		{Outcome(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestMotorRefString(t *testing.T) {
	tests := []struct {
		motor MotorRef
		want  string
	}{
		{MotorStrong, "STRONG"},
		{MotorWeak, "WEAK"},
		{MotorRef(9), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.motor.String(); got != tt.want {
			t.Errorf("MotorRef(%d).String() = %q, want %q", tt.motor, got, tt.want)
		}
	}
}
