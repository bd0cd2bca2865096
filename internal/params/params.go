// Package params acquires synthesis parameters from interactive prompts,
// positional parameter files and HCL parameter files.
package params

import (
	"errors"

	"github.com/cwbudde/algo-spectra/dsp/grid"
	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// ErrMalformed is returned when a parameter source cannot be parsed.
var ErrMalformed = errors.New("params: malformed parameters")

// Params is a synthesis request plus optional model overrides.
type Params struct {
	Request synth.Request

	LineWidth  *float64
	DepthSigma *float64
	Smoothing  *float64
	GridMode   *grid.Mode
}

// Options converts the overrides into synthesizer options.
func (p Params) Options() []synth.Option {
	var opts []synth.Option
	if p.LineWidth != nil {
		opts = append(opts, synth.WithLineWidth(*p.LineWidth))
	}
	if p.DepthSigma != nil {
		opts = append(opts, synth.WithDepthSigma(*p.DepthSigma))
	}
	if p.Smoothing != nil {
		opts = append(opts, synth.WithSmoothing(*p.Smoothing))
	}
	if p.GridMode != nil {
		opts = append(opts, synth.WithGridMode(*p.GridMode))
	}
	return opts
}
