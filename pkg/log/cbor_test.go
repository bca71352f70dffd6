package log

import (
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	intensity := 1.0
	duration := 250 * time.Millisecond

	event := Event{
		Timestamp:     time.Now().UTC(),
		ControllerID:  "ctrl-1234",
		Category:      CategoryPulseStart,
		Device:        "gamepad0",
		Motor:         1,
		PulseID:       "pulse-5678",
		Intensity:     &intensity,
		PulseDuration: &duration,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.ControllerID != event.ControllerID {
		t.Errorf("ControllerID: got %q, want %q", decoded.ControllerID, event.ControllerID)
	}
	if decoded.Category != CategoryPulseStart {
		t.Errorf("Category: got %v, want %v", decoded.Category, CategoryPulseStart)
	}
	if decoded.Device != "gamepad0" {
		t.Errorf("Device: got %q, want %q", decoded.Device, "gamepad0")
	}
	if decoded.Motor != 1 {
		t.Errorf("Motor: got %d, want 1", decoded.Motor)
	}
	if decoded.PulseID != event.PulseID {
		t.Errorf("PulseID: got %q, want %q", decoded.PulseID, event.PulseID)
	}
	if decoded.Intensity == nil || *decoded.Intensity != 1.0 {
		t.Errorf("Intensity: got %v, want 1.0", decoded.Intensity)
	}
	if decoded.PulseDuration == nil || *decoded.PulseDuration != duration {
		t.Errorf("PulseDuration: got %v, want %v", decoded.PulseDuration, duration)
	}
}

func TestDecodeOmittedFields(t *testing.T) {
	event := Event{
		Timestamp:    time.Now().UTC(),
		ControllerID: "ctrl-1234",
		Category:     CategoryPulseRejected,
		Device:       "gamepad0",
		Reason:       "motor not supported",
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.PulseID != "" {
		t.Errorf("PulseID: got %q, want empty", decoded.PulseID)
	}
	if decoded.Intensity != nil {
		t.Errorf("Intensity: got %v, want nil", decoded.Intensity)
	}
	if decoded.PulseDuration != nil {
		t.Errorf("PulseDuration: got %v, want nil", decoded.PulseDuration)
	}
	if decoded.Reason != event.Reason {
		t.Errorf("Reason: got %q, want %q", decoded.Reason, event.Reason)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00, 0x13}); err == nil {
		t.Error("DecodeEvent accepted garbage input")
	}
}
