package log

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryPulseStart, "PULSE_START"},
		{CategoryPulseStop, "PULSE_STOP"},
		{CategoryPulseSuperseded, "PULSE_SUPERSEDED"},
		{CategoryPulseRejected, "PULSE_REJECTED"},
		{CategoryIntensityChange, "INTENSITY_CHANGE"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
