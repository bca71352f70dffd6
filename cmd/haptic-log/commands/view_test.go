package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/haptic-kit/haptic-go/pkg/log"
)

func TestFormatPulseStartEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	event := log.Event{
		Timestamp:     ts,
		ControllerID:  "abc12345-6789-0123-4567-890abcdef012",
		Category:      log.CategoryPulseStart,
		Device:        "gamepad0",
		Motor:         0,
		PulseID:       "def67890-1234-5678-9012-345678901234",
		Intensity:     floatPtr(1.0),
		PulseDuration: durationPtr(250 * time.Millisecond),
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// Check timestamp format
	if !strings.Contains(output, "2026-01-28T10:15:32.123456Z") {
		t.Errorf("expected microsecond timestamp, got: %s", output)
	}

	// Check controller ID (shortened)
	if !strings.Contains(output, "[ctrl:abc12345]") {
		t.Errorf("expected shortened controller ID, got: %s", output)
	}

	// Check category and target
	if !strings.Contains(output, "PULSE_START") {
		t.Errorf("expected PULSE_START category, got: %s", output)
	}
	if !strings.Contains(output, "gamepad0/0") {
		t.Errorf("expected device/motor, got: %s", output)
	}

	// Check details
	if !strings.Contains(output, "Pulse: def67890") {
		t.Errorf("expected shortened pulse ID, got: %s", output)
	}
	if !strings.Contains(output, "Intensity: 1.00") {
		t.Errorf("expected intensity, got: %s", output)
	}
	if !strings.Contains(output, "Duration: 250ms") {
		t.Errorf("expected duration, got: %s", output)
	}
}

func TestFormatRejectedEventWithReason(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	event := log.Event{
		Timestamp:    ts,
		ControllerID: "abc12345",
		Category:     log.CategoryPulseRejected,
		Device:       "gamepad0",
		Motor:        1,
		Reason:       "motor not supported",
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "PULSE_REJECTED") {
		t.Errorf("expected PULSE_REJECTED category, got: %s", output)
	}
	if !strings.Contains(output, "Reason: motor not supported") {
		t.Errorf("expected reason, got: %s", output)
	}
	// No pulse was created, so no pulse line
	if strings.Contains(output, "Pulse:") {
		t.Errorf("unexpected pulse line, got: %s", output)
	}
}

func TestRunViewFiltersCategory(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, ControllerID: "c1", Category: log.CategoryPulseStart, Device: "gamepad0"},
		{Timestamp: ts, ControllerID: "c1", Category: log.CategoryPulseStop, Device: "gamepad0"},
		{Timestamp: ts, ControllerID: "c1", Category: log.CategoryPulseRejected, Device: "gamepad0"},
	}

	path := createTestLogFile(t, events)

	cat := log.CategoryPulseStop
	var buf bytes.Buffer
	err := RunView(path, ViewFilter{Category: &cat}, &buf)
	if err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "PULSE_STOP") {
		t.Errorf("expected PULSE_STOP event, got: %s", output)
	}
	if strings.Contains(output, "PULSE_START") || strings.Contains(output, "PULSE_REJECTED") {
		t.Errorf("filter leaked other categories: %s", output)
	}
}

func TestRunViewFiltersPulseID(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, ControllerID: "c1", Category: log.CategoryPulseStart, PulseID: "pulse-aaaa-1111"},
		{Timestamp: ts, ControllerID: "c1", Category: log.CategoryPulseStart, PulseID: "pulse-bbbb-2222"},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunView(path, ViewFilter{PulseID: "pulse-aaaa-1111"}, &buf)
	if err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pulse-aa") {
		t.Errorf("expected matching pulse, got: %s", output)
	}
	if strings.Contains(output, "pulse-bb") {
		t.Errorf("filter leaked other pulse: %s", output)
	}
}

func TestParseCategoryFlag(t *testing.T) {
	tests := []struct {
		input string
		want  log.Category
	}{
		{"start", log.CategoryPulseStart},
		{"stop", log.CategoryPulseStop},
		{"superseded", log.CategoryPulseSuperseded},
		{"rejected", log.CategoryPulseRejected},
		{"intensity", log.CategoryIntensityChange},
		{"REJECTED", log.CategoryPulseRejected},
	}

	for _, tt := range tests {
		got, err := ParseCategoryFlag(tt.input)
		if err != nil {
			t.Errorf("ParseCategoryFlag(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategoryFlag(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseCategoryFlag("bogus"); err == nil {
		t.Error("expected error for invalid category")
	}
}

func TestShortenID(t *testing.T) {
	if got := shortenID("abc12345-6789"); got != "abc12345" {
		t.Errorf("shortenID = %q, want abc12345", got)
	}
	if got := shortenID("abc"); got != "abc" {
		t.Errorf("shortenID = %q, want abc", got)
	}
}
