// Package grid builds evenly spaced wavelength grids over a half-open interval.
package grid

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Errors returned by grid constructors.
var (
	ErrInvalidCount    = errors.New("grid: point count must be > 0")
	ErrInvalidInterval = errors.New("grid: interval end must be greater than start")
	ErrStalled         = errors.New("grid: step too small to advance")
)

// Mode selects how grid points are computed.
type Mode int

const (
	// ModeStepped accumulates the step onto a running value and stops at the
	// first value >= end. Floating-point accumulation can yield n-1 or n+1
	// points; the output is reproducible bit for bit across runs.
	ModeStepped Mode = iota

	// ModeIndexed computes start + i*step for i in [0, n) and always yields
	// exactly n points.
	ModeIndexed
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStepped:
		return "stepped"
	case ModeIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "stepped", "":
		return ModeStepped, nil
	case "indexed":
		return ModeIndexed, nil
	default:
		return 0, fmt.Errorf("grid: unknown mode %q", name)
	}
}

// Step returns the nominal spacing (end-start)/n.
func Step(start, end float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return (end - start) / float64(n)
}

// Build dispatches to the constructor for mode.
func Build(mode Mode, start, end float64, n int) ([]float64, error) {
	switch mode {
	case ModeStepped:
		return Stepped(start, end, n)
	case ModeIndexed:
		return Indexed(start, end, n)
	default:
		return nil, fmt.Errorf("grid: unknown mode %d", int(mode))
	}
}

// Stepped returns ascending samples in [start, end) produced by repeatedly
// adding (end-start)/n to start while the running value stays below end.
func Stepped(start, end float64, n int) ([]float64, error) {
	if err := validate(start, end, n); err != nil {
		return nil, err
	}

	step := Step(start, end, n)
	out := make([]float64, 0, n+1)
	for v := start; v < end; {
		out = append(out, v)
		next := v + step
		if next <= v {
			return nil, fmt.Errorf("%w: start=%g step=%g (use indexed mode for this interval)", ErrStalled, start, step)
		}
		v = next
	}
	return out, nil
}

// Indexed returns exactly n ascending samples start + i*(end-start)/n.
func Indexed(start, end float64, n int) ([]float64, error) {
	if err := validate(start, end, n); err != nil {
		return nil, err
	}

	step := Step(start, end, n)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

func validate(start, end float64, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if !core.IsFinite(start, end) || end <= start {
		return fmt.Errorf("%w: [%g, %g)", ErrInvalidInterval, start, end)
	}
	return nil
}
