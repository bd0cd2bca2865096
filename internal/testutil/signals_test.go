package testutil

import "testing"

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireInRange(t, a, -0.5, 0.5)
}

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(1, 0.5, 4), []float64{1, 1.5, 2, 2.5}, 0)
}

func TestNearest(t *testing.T) {
	xs := Ramp(0, 0.1, 101)
	if got := Nearest(xs, 5.02); got != 50 {
		t.Fatalf("Nearest = %d, want 50", got)
	}
	if got := Nearest(xs, -3); got != 0 {
		t.Fatalf("Nearest = %d, want 0", got)
	}
}
