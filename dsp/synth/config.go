package synth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/grid"
	"github.com/cwbudde/algo-spectra/dsp/line"
)

// ErrInvalidConfig is returned by Validate for out-of-range model settings.
var ErrInvalidConfig = errors.New("synth: invalid config")

// Config holds the model constants of a synthesis run.
type Config struct {
	LineWidth  float64   // Gaussian sigma shared by all lines
	DepthMean  float64   // mean of the depth distribution before folding
	DepthSigma float64   // width of the depth distribution
	MaxDepth   float64   // upper clip for folded depths
	GridMode   grid.Mode // grid construction rule
	Smoothing  float64   // instrumental Gaussian sigma; 0 disables smoothing
}

// Option mutates a Config. Options store values as given; Validate reports
// the ones out of range.
type Option func(*Config)

// DefaultConfig returns the reference model: width 4.0, depths |N(0, 0.1)|
// clipped to 1.0, stepped grid, no smoothing.
func DefaultConfig() Config {
	return Config{
		LineWidth:  line.DefaultWidth,
		DepthMean:  0,
		DepthSigma: 0.1,
		MaxDepth:   1,
		GridMode:   grid.ModeStepped,
	}
}

// WithLineWidth sets the Gaussian sigma of every line.
func WithLineWidth(width float64) Option {
	return func(cfg *Config) {
		cfg.LineWidth = width
	}
}

// WithDepthSigma sets the width of the depth distribution.
func WithDepthSigma(sigma float64) Option {
	return func(cfg *Config) {
		cfg.DepthSigma = sigma
	}
}

// WithMaxDepth sets the clip applied to folded depths.
func WithMaxDepth(depth float64) Option {
	return func(cfg *Config) {
		cfg.MaxDepth = depth
	}
}

// WithGridMode selects the grid construction rule.
func WithGridMode(mode grid.Mode) Option {
	return func(cfg *Config) {
		cfg.GridMode = mode
	}
}

// WithSmoothing enables instrumental smoothing with the given sigma in
// wavelength units.
func WithSmoothing(sigma float64) Option {
	return func(cfg *Config) {
		cfg.Smoothing = sigma
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether cfg can drive a synthesis run.
func (cfg Config) Validate() error {
	if !(cfg.LineWidth > 0) {
		return fmt.Errorf("%w: line width must be > 0: %g", ErrInvalidConfig, cfg.LineWidth)
	}
	if !(cfg.DepthSigma >= 0) {
		return fmt.Errorf("%w: depth sigma must be >= 0: %g", ErrInvalidConfig, cfg.DepthSigma)
	}
	if !(cfg.MaxDepth > 0 && cfg.MaxDepth <= 1) {
		return fmt.Errorf("%w: max depth must be in (0,1]: %g", ErrInvalidConfig, cfg.MaxDepth)
	}
	if !(cfg.Smoothing >= 0) {
		return fmt.Errorf("%w: smoothing must be >= 0: %g", ErrInvalidConfig, cfg.Smoothing)
	}
	if cfg.GridMode != grid.ModeStepped && cfg.GridMode != grid.ModeIndexed {
		return fmt.Errorf("%w: unknown grid mode %d", ErrInvalidConfig, int(cfg.GridMode))
	}
	return nil
}
