package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/grid"
	"github.com/cwbudde/algo-spectra/dsp/line"
	"github.com/cwbudde/algo-spectra/dsp/sampler"
	"github.com/cwbudde/algo-vecmath"
)

// Synthesizer produces spectra from a Config and a random sampler.
// It reuses an internal per-line buffer and is not safe for concurrent use.
type Synthesizer struct {
	cfg     Config
	sampler *sampler.Sampler
	work    []float64
}

// New creates a Synthesizer. A nil sampler draws from entropy-seeded sources.
func New(s *sampler.Sampler, opts ...Option) *Synthesizer {
	if s == nil {
		s = sampler.New()
	}
	return &Synthesizer{
		cfg:     ApplyOptions(opts...),
		sampler: s,
	}
}

// Config returns the synthesizer configuration.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// DrawLines draws req.Lines lines: depths are |N(DepthMean, DepthSigma)|
// clipped to MaxDepth, centers are uniform over [req.Start, req.End).
func (s *Synthesizer) DrawLines(req Request) (line.Set, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	depths, err := s.sampler.Normal(s.cfg.DepthMean, s.cfg.DepthSigma, req.Lines)
	if err != nil {
		return nil, fmt.Errorf("synth: draw depths: %w", err)
	}
	centers, err := s.sampler.Uniform(req.Start, req.End, req.Lines)
	if err != nil {
		return nil, fmt.Errorf("synth: draw centers: %w", err)
	}

	lines := make(line.Set, req.Lines)
	for i := range lines {
		lines[i] = line.Line{
			Center: centers[i],
			Depth:  core.Clamp(math.Abs(depths[i]), 0, s.cfg.MaxDepth),
		}
	}
	return lines, nil
}

// Grid builds the wavelength grid for req and trims it to at most
// req.Resolution points.
func (s *Synthesizer) Grid(req Request) ([]float64, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.Build(s.cfg.GridMode, req.Start, req.End, req.Resolution)
	if err != nil {
		return nil, fmt.Errorf("synth: build grid: %w", err)
	}
	if len(g) > req.Resolution {
		g = g[:req.Resolution]
	}
	return g, nil
}

// Render evaluates lines over wavelengths with the configured width and
// applies smoothing when enabled.
func (s *Synthesizer) Render(lines line.Set, wavelengths []float64) ([]float64, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	s.work = core.EnsureLen(s.work, len(wavelengths))
	flux := render(lines, wavelengths, s.cfg.LineWidth, s.work)
	if s.cfg.Smoothing > 0 && len(flux) > 1 {
		return Smooth(flux, wavelengths[1]-wavelengths[0], s.cfg.Smoothing)
	}
	return flux, nil
}

// Synthesize runs the full pipeline for req.
func (s *Synthesizer) Synthesize(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	began := time.Now()
	lines, err := s.DrawLines(req)
	if err != nil {
		return nil, err
	}
	wavelengths, err := s.Grid(req)
	if err != nil {
		return nil, err
	}
	flux, err := s.Render(lines, wavelengths)
	if err != nil {
		return nil, err
	}

	return &Result{
		Request:     req,
		Config:      s.cfg,
		Lines:       lines,
		Wavelengths: wavelengths,
		Flux:        flux,
		Elapsed:     time.Since(began),
	}, nil
}

// Render returns the product over lines of 1 - Gaussian(x) for every x in
// wavelengths. Lines are applied in order; an empty set yields all ones.
func Render(lines line.Set, wavelengths []float64, width float64) []float64 {
	return render(lines, wavelengths, width, nil)
}

// render is Render with a caller-owned scratch buffer for the per-line
// transmission; work is grown when it is shorter than wavelengths.
func render(lines line.Set, wavelengths []float64, width float64, work []float64) []float64 {
	total := core.Ones(len(wavelengths))
	if len(lines) == 0 || len(wavelengths) == 0 {
		return total
	}

	work = core.EnsureLen(work, len(wavelengths))
	for _, l := range lines {
		l.TransmissionInto(work, wavelengths, width)
		vecmath.MulBlockInPlace(total, work)
	}
	return total
}
