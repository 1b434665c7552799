package mathutil

import "testing"

func TestRoundRate(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{24.038461538, 24.04},
		{24.044, 24.04},
		{24.046, 24.05},
		{0.004, 0.0},
		{-1.006, -1.01},
		{100, 100},
	}

	for _, tt := range tests {
		if got := RoundRate(tt.input); got != tt.want {
			t.Errorf("RoundRate(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{4.16, 4.2},
		{4.14, 4.1},
		{49.92, 49.9},
		{0.52, 0.5},
		{6.24, 6.2},
		{0.04, 0.0},
		{24, 24},
	}

	for _, tt := range tests {
		if got := RoundHours(tt.input); got != tt.want {
			t.Errorf("RoundHours(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsPositive(t *testing.T) {
	if !IsPositive(0.02) {
		t.Error("IsPositive(0.02) = false, want true")
	}
	if IsPositive(0.005) {
		t.Error("IsPositive(0.005) = true, want false")
	}
	if IsPositive(-1) {
		t.Error("IsPositive(-1) = true, want false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.05, 0.05) {
		t.Error("WithinTolerance(1.0, 1.05, 0.05) = false, want true")
	}
	if WithinTolerance(1.0, 1.06, 0.05) {
		t.Error("WithinTolerance(1.0, 1.06, 0.05) = true, want false")
	}
}
