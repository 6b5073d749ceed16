package bahncopilot

import (
	"testing"
	"time"
)

func TestZeroPad(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "00"},
		{5, "05"},
		{9, "09"},
		{10, "10"},
		{12, "12"},
		{99, "99"},
		{100, "100"},
	}

	for _, tt := range tests {
		if got := ZeroPad(tt.n); got != tt.expected {
			t.Errorf("ZeroPad(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	base := time.UnixMilli(1704103200000)

	tests := []struct {
		name    string
		minutes int
	}{
		{"plus one hour", 60},
		{"plus one minute", 1},
		{"zero", 0},
		{"negative", -45},
		{"plus one day", 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMinutes(base, tt.minutes)
			offset := got.UnixMilli() - base.UnixMilli()
			if offset != int64(tt.minutes)*60000 {
				t.Errorf("offset = %dms, want %dms", offset, int64(tt.minutes)*60000)
			}
		})
	}
}

func TestClock(t *testing.T) {
	cest := time.FixedZone("CEST", 2*3600)

	tests := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{"morning", time.Date(2025, 8, 22, 8, 5, 0, 0, cest), "08:05"},
		{"midnight", time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC), "00:00"},
		{"evening", time.Date(2025, 8, 22, 23, 59, 0, 0, cest), "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock(tt.in); got != tt.expected {
				t.Errorf("Clock() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClockOrUnknown_Nil(t *testing.T) {
	if got := clockOrUnknown(nil); got != "??" {
		t.Errorf("clockOrUnknown(nil) = %q, want %q", got, "??")
	}
}

func TestGermanDateLong(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{"friday", time.Date(2025, 8, 22, 8, 0, 0, 0, time.UTC), "Fr., 22.08.2025"},
		{"sunday", time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC), "So., 24.08.2025"},
		{"monday", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), "Mo., 05.01.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := germanDateLong(tt.in); got != tt.expected {
				t.Errorf("germanDateLong() = %q, want %q", got, tt.expected)
			}
		})
	}
}
