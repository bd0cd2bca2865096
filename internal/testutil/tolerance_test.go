package testutil

import "testing"

func TestRequireHelpersPass(t *testing.T) {
	data := []float64{0, 0.5, 1}
	RequireSliceNearlyEqual(t, data, []float64{0, 0.5, 1}, 0)
	RequireFinite(t, data)
	RequireInRange(t, data, 0, 1)
	RequireAscending(t, data)
}
