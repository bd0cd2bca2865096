package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/line"
)

// ErrInvalidRequest is returned for requests outside the accepted ranges.
var ErrInvalidRequest = errors.New("synth: invalid request")

// Request describes one synthesis run.
type Request struct {
	Start      float64 // first wavelength, inclusive
	End        float64 // last wavelength, exclusive
	Resolution int     // requested number of grid points
	Lines      int     // number of absorption lines
}

// Validate checks start >= 0, end > start, resolution > 0 and lines >= 0.
func (r Request) Validate() error {
	switch {
	case !core.IsFinite(r.Start, r.End):
		return fmt.Errorf("%w: non-finite interval [%g, %g)", ErrInvalidRequest, r.Start, r.End)
	case r.Start < 0:
		return fmt.Errorf("%w: start must be >= 0: %g", ErrInvalidRequest, r.Start)
	case r.End <= r.Start:
		return fmt.Errorf("%w: end must be > start: [%g, %g)", ErrInvalidRequest, r.Start, r.End)
	case r.Resolution <= 0:
		return fmt.Errorf("%w: resolution must be > 0: %d", ErrInvalidRequest, r.Resolution)
	case r.Lines < 0:
		return fmt.Errorf("%w: lines must be >= 0: %d", ErrInvalidRequest, r.Lines)
	}
	return nil
}

// Result is a synthesized spectrum together with the inputs that produced it.
type Result struct {
	Request     Request
	Config      Config
	Lines       line.Set
	Wavelengths []float64
	Flux        []float64
	Elapsed     time.Duration
}

// Len returns the number of grid points.
func (r *Result) Len() int {
	return len(r.Wavelengths)
}
