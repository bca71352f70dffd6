package examples

import (
	"testing"

	"github.com/haptic-kit/haptic-go/pkg/haptics"
)

func TestSimBackendUnknownDevice(t *testing.T) {
	b := NewSimBackend()

	if b.SupportsDevice("pad0") {
		t.Error("SupportsDevice = true for unregistered device")
	}
	if b.SupportsMotor("pad0", haptics.MotorStrong) {
		t.Error("SupportsMotor = true for unregistered motor")
	}
	if _, ok := b.Intensity("pad0", haptics.MotorStrong); ok {
		t.Error("Intensity ok = true for unregistered motor")
	}
}

func TestSimBackendAddMotor(t *testing.T) {
	b := NewSimBackend()
	b.AddMotor("pad0", haptics.MotorStrong)

	if !b.SupportsDevice("pad0") {
		t.Error("SupportsDevice = false after AddMotor")
	}
	if !b.SupportsMotor("pad0", haptics.MotorStrong) {
		t.Error("SupportsMotor = false after AddMotor")
	}
	if b.SupportsMotor("pad0", haptics.MotorWeak) {
		t.Error("SupportsMotor = true for unregistered sibling motor")
	}
}

func TestSimBackendSupportToggles(t *testing.T) {
	b := NewSimBackend()
	b.AddMotor("pad0", haptics.MotorStrong)

	b.SetDeviceSupported("pad0", false)
	if b.SupportsDevice("pad0") {
		t.Error("SupportsDevice = true after SetDeviceSupported(false)")
	}
	// The motor flag is independent of the device flag
	if !b.SupportsMotor("pad0", haptics.MotorStrong) {
		t.Error("SupportsMotor flipped by SetDeviceSupported")
	}

	b.SetDeviceSupported("pad0", true)
	b.SetMotorSupported("pad0", haptics.MotorStrong, false)
	if b.SupportsMotor("pad0", haptics.MotorStrong) {
		t.Error("SupportsMotor = true after SetMotorSupported(false)")
	}
}

func TestSimBackendIntensity(t *testing.T) {
	b := NewSimBackend()
	b.AddMotor("pad0", haptics.MotorStrong)

	if _, ok := b.Intensity("pad0", haptics.MotorStrong); ok {
		t.Error("Intensity ok = true before any write")
	}

	b.SetIntensity("pad0", haptics.MotorStrong, 1.0)
	v, ok := b.Intensity("pad0", haptics.MotorStrong)
	if !ok || v != 1.0 {
		t.Errorf("Intensity = (%v, %v), want (1.0, true)", v, ok)
	}

	b.SetIntensity("pad0", haptics.MotorStrong, 0)
	v, ok = b.Intensity("pad0", haptics.MotorStrong)
	if !ok || v != 0 {
		t.Errorf("Intensity = (%v, %v) after zero write, want (0, true)", v, ok)
	}
}

func TestSimBackendJournal(t *testing.T) {
	b := NewSimBackend()
	b.AddMotor("pad0", haptics.MotorWeak)

	b.SetIntensity("pad0", haptics.MotorWeak, 1.0)
	b.SetIntensity("pad0", haptics.MotorWeak, 0)

	writes := b.Writes()
	if len(writes) != 2 {
		t.Fatalf("Writes() returned %d entries, want 2", len(writes))
	}
	if writes[0].Value != 1.0 || writes[1].Value != 0 {
		t.Errorf("journal values = [%v %v], want [1 0]", writes[0].Value, writes[1].Value)
	}
	if writes[0].Motor != haptics.MotorWeak {
		t.Errorf("journal motor = %v, want WEAK", writes[0].Motor)
	}

	b.ClearWrites()
	if len(b.Writes()) != 0 {
		t.Error("journal not empty after ClearWrites")
	}

	// Intensity survives a journal clear
	if v, ok := b.Intensity("pad0", haptics.MotorWeak); !ok || v != 0 {
		t.Errorf("Intensity = (%v, %v) after ClearWrites, want (0, true)", v, ok)
	}
}

func TestSimBackendWriteToUnregisteredMotor(t *testing.T) {
	b := NewSimBackend()

	// Writes land even without registration; the motor stays unsupported.
	b.SetIntensity("pad9", haptics.MotorStrong, 0.5)

	if b.SupportsMotor("pad9", haptics.MotorStrong) {
		t.Error("write made an unregistered motor supported")
	}
	if v, ok := b.Intensity("pad9", haptics.MotorStrong); !ok || v != 0.5 {
		t.Errorf("Intensity = (%v, %v), want (0.5, true)", v, ok)
	}
}
