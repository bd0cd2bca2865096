package synth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/dsp/line"
	"github.com/cwbudde/algo-spectra/dsp/sampler"
	"github.com/cwbudde/algo-spectra/internal/testutil"
)

func TestKernelUnitAreaAndSymmetric(t *testing.T) {
	k, err := Kernel(2, 0.5, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(k) != 2*16+1 {
		t.Fatalf("len = %d, want 33", len(k))
	}
	sum := 0.0
	for i, v := range k {
		sum += v
		if v != k[len(k)-1-i] {
			t.Fatalf("kernel asymmetric at %d", i)
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("sum = %v, want 1", sum)
	}
}

func TestKernelTruncated(t *testing.T) {
	k, err := Kernel(100, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(k) != 7 {
		t.Fatalf("len = %d, want 7", len(k))
	}
	if _, err := Kernel(0, 1, -1); err == nil {
		t.Fatal("expected error for zero sigma")
	}
	if _, err := Kernel(1, 0, -1); err == nil {
		t.Fatal("expected error for zero step")
	}
}

func TestSmoothConservesEquivalentWidth(t *testing.T) {
	wavelengths := testutil.Ramp(0, 0.1, 1000)
	flux := Render(line.Set{{Center: 50, Depth: 0.8}}, wavelengths, 1)

	smoothed, err := Smooth(flux, 0.1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(smoothed) != len(flux) {
		t.Fatalf("len = %d, want %d", len(smoothed), len(flux))
	}
	testutil.RequireInRange(t, smoothed, 0, 1)

	var before, after float64
	for i := range flux {
		before += 1 - flux[i]
		after += 1 - smoothed[i]
	}
	if math.Abs(before-after) > 1e-6*before {
		t.Fatalf("equivalent width changed: %v -> %v", before, after)
	}

	center := testutil.Nearest(wavelengths, 50)
	if smoothed[center] <= flux[center] {
		t.Fatalf("smoothing should make the core shallower: %v <= %v", smoothed[center], flux[center])
	}
}

func TestSmoothFlatUnchanged(t *testing.T) {
	flat := []float64{1, 1, 1, 1, 1}
	out, err := Smooth(flat, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out, flat, 1e-12)
}

func TestSynthesizeWithSmoothing(t *testing.T) {
	s := New(sampler.New(sampler.WithSeed(3)), WithSmoothing(5))
	res, err := s.Synthesize(Request{Start: 900, End: 2900, Resolution: 2048, Lines: 99})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Flux) != res.Len() {
		t.Fatalf("len(flux)=%d len(grid)=%d", len(res.Flux), res.Len())
	}
	testutil.RequireInRange(t, res.Flux, 0, 1)
	testutil.RequireFinite(t, res.Flux)
}
