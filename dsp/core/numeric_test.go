package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "edge", value: 1, min: 0, max: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(0, -1, 1e300) {
		t.Fatal("expected finite values")
	}
	if IsFinite(1, math.NaN()) {
		t.Fatal("NaN reported as finite")
	}
	if IsFinite(math.Inf(-1)) {
		t.Fatal("-Inf reported as finite")
	}
	if !IsFinite() {
		t.Fatal("empty input should be finite")
	}
}
