package line

import (
	"math"
	"testing"
)

func TestGaussianPeak(t *testing.T) {
	if got := Gaussian(5, 5, 0.3, DefaultWidth); got != 0.3 {
		t.Fatalf("Gaussian at center = %v, want 0.3", got)
	}
}

func TestGaussianOneSigma(t *testing.T) {
	got := Gaussian(9, 5, 1, 4)
	want := math.Exp(-0.5)
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("Gaussian at 1 sigma = %v, want %v", got, want)
	}
}

func TestGaussianSymmetric(t *testing.T) {
	for _, dx := range []float64{0.5, 1, 3.7, 12} {
		a := Gaussian(100+dx, 100, 0.8, DefaultWidth)
		b := Gaussian(100-dx, 100, 0.8, DefaultWidth)
		if a != b {
			t.Fatalf("asymmetric at dx=%v: %v != %v", dx, a, b)
		}
	}
}

func TestGaussianFarField(t *testing.T) {
	if got := Gaussian(100, 0, 1, DefaultWidth); got > 1e-100 {
		t.Fatalf("Gaussian 25 sigma away = %v, want ~0", got)
	}
}

func TestTransmissionRange(t *testing.T) {
	l := Line{Center: 5, Depth: 0.7}
	grid := make([]float64, 101)
	for i := range grid {
		grid[i] = float64(i) * 0.1
	}
	dst := make([]float64, len(grid))
	if n := l.TransmissionInto(dst, grid, DefaultWidth); n != len(grid) {
		t.Fatalf("written = %d, want %d", n, len(grid))
	}
	for i, v := range dst {
		if v < 1-l.Depth || v > 1 {
			t.Fatalf("dst[%d] = %v outside [%v, 1]", i, v, 1-l.Depth)
		}
	}
	if got := dst[50]; math.Abs(got-0.3) > 1e-12 {
		t.Fatalf("dst at center = %v, want 0.3", got)
	}
}

func TestTransmissionShortDestination(t *testing.T) {
	l := Line{Center: 0, Depth: 0.5}
	dst := []float64{9, 9}
	if n := l.TransmissionInto(dst, []float64{0, 1, 2}, 1); n != 2 {
		t.Fatalf("written = %d, want 2", n)
	}
	if dst[0] != 0.5 {
		t.Fatalf("dst[0] = %v, want 0.5", dst[0])
	}
}

func TestSetAccessors(t *testing.T) {
	s := Set{{Center: 1, Depth: 0.1}, {Center: 2, Depth: 0.2}}
	c, d := s.Centers(), s.Depths()
	if c[0] != 1 || c[1] != 2 || d[0] != 0.1 || d[1] != 0.2 {
		t.Fatalf("Centers=%v Depths=%v", c, d)
	}
}

func TestPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if Gaussian(3.3, 2.1, 0.4, 4) != Gaussian(3.3, 2.1, 0.4, 4) {
			t.Fatal("Gaussian is not deterministic")
		}
	}
}
