package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-10)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1, 1000)
	kernel := testutil.DeterministicNoise(4, 1, 129)

	want, err := Direct(signal, kernel)
	if err != nil {
		t.Fatal(err)
	}
	got, err := OverlapAddConvolve(signal, kernel)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestOverlapAddBlockSizes(t *testing.T) {
	signal := testutil.DeterministicNoise(5, 1, 700)
	kernel := testutil.DeterministicNoise(6, 1, 33)
	want, err := Direct(signal, kernel)
	if err != nil {
		t.Fatal(err)
	}

	for _, bs := range []int{16, 100, 512} {
		oa, err := NewOverlapAdd(kernel, bs)
		if err != nil {
			t.Fatalf("NewOverlapAdd(%d) error = %v", bs, err)
		}
		if oa.BlockSize() != bs {
			t.Fatalf("BlockSize = %d, want %d", oa.BlockSize(), bs)
		}
		if fs := oa.FFTSize(); fs < bs+len(kernel)-1 || fs&(fs-1) != 0 {
			t.Fatalf("FFTSize = %d is not a power of two >= %d", fs, bs+len(kernel)-1)
		}
		got, err := oa.Process(signal)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestOverlapAddProcessToLength(t *testing.T) {
	oa, err := NewOverlapAdd([]float64{1, 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := oa.ProcessTo(make([]float64, 3), []float64{1, 2, 3}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := oa.Process(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1, 512)
	for _, m := range []int{5, 64, 65, 200} {
		kernel := testutil.DeterministicNoise(int64(m), 1, m)
		want, err := Direct(signal, kernel)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Convolve(signal, kernel)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestConvolveCommutative(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{0.5, -1, 4, 2, 7}
	ab, err := Convolve(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Convolve(b, a)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	same, err := ConvolveMode(a, b, ModeSame)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, same, []float64{3, 6, 9, 12, 9}, 1e-12)

	valid, err := ConvolveMode(a, b, ModeValid)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, valid, []float64{6, 9, 12}, 1e-12)

	full, err := ConvolveMode(a, b, ModeFull)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != 7 {
		t.Fatalf("full len = %d, want 7", len(full))
	}
}

func TestConvolveModeSameShortSignal(t *testing.T) {
	a := []float64{0, 1, 0}
	b := []float64{0.25, 0.5, 1, 0.5, 0.25}
	same, err := ConvolveMode(a, b, ModeSame)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, same, []float64{0.5, 1, 0.5}, 1e-12)
}

func TestNextPowerOf2(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 255: 256, 256: 256, 257: 512} {
		if got := nextPowerOf2(n); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", n, got, want)
		}
	}
}
