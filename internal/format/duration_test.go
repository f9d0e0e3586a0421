package format

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"zero", 0, "0ns"},
		{"nanoseconds", 850 * time.Nanosecond, "850ns"},
		{"microseconds", 42 * time.Microsecond, "42µs"},
		{"microseconds truncate", 1999 * time.Nanosecond, "1µs"},
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"minutes", 2 * time.Minute, "2m0s"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Elapsed(tt.d); got != tt.expected {
				t.Errorf("Elapsed(%v) = %q, want %q", tt.d, got, tt.expected)
			}
		})
	}
}
