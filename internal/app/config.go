package app

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/grid"
	"github.com/cwbudde/algo-spectra/dsp/sampler"
	"github.com/cwbudde/algo-spectra/dsp/synth"
	"github.com/cwbudde/algo-spectra/internal/params"
)

// DefaultCSVPath is used when no other output is requested.
const DefaultCSVPath = "misc/arrays.dat"

// Config is the resolved command-line configuration.
type Config struct {
	ParamFile string // empty: prompt interactively

	CSVPath  string
	PlotPath string
	DBPath   string
	Summary  bool

	GridMode  string  // empty: keep the parameter file's or the default
	Seed      int64   // 0: entropy
	Smoothing float64 // < 0: keep the parameter file's or the default
	LineWidth float64 // <= 0: keep the parameter file's or the default

	LogLevel  string
	LogFormat string
}

// synthOptions merges parameter-file overrides with flag overrides; flags win.
func (c Config) synthOptions(p params.Params) ([]synth.Option, error) {
	opts := p.Options()
	if c.GridMode != "" {
		mode, err := grid.ParseMode(c.GridMode)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		opts = append(opts, synth.WithGridMode(mode))
	}
	if c.Smoothing >= 0 {
		opts = append(opts, synth.WithSmoothing(c.Smoothing))
	}
	if c.LineWidth > 0 {
		opts = append(opts, synth.WithLineWidth(c.LineWidth))
	}
	return opts, nil
}

func (c Config) sampler() *sampler.Sampler {
	if c.Seed != 0 {
		return sampler.New(sampler.WithSeed(c.Seed))
	}
	return sampler.New()
}
