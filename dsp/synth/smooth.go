package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/dsp/conv"
	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/line"
)

// kernelCutoff is the kernel half-width in units of sigma.
const kernelCutoff = 4.0

// Kernel returns a unit-area Gaussian kernel of the given sigma sampled at
// spacing step, truncated at ±4 sigma and to at most 2*maxHalf+1 taps.
func Kernel(sigma, step float64, maxHalf int) ([]float64, error) {
	if !(sigma > 0) || !(step > 0) || !core.IsFinite(sigma, step) {
		return nil, fmt.Errorf("synth: kernel needs sigma > 0 and step > 0: sigma=%g step=%g", sigma, step)
	}

	half := int(math.Ceil(kernelCutoff * sigma / step))
	if maxHalf >= 0 && half > maxHalf {
		half = maxHalf
	}

	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := range kernel {
		kernel[i] = line.Gaussian(float64(i-half)*step, 0, 1, sigma)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, nil
}

// Smooth convolves the absorption 1-flux with a Gaussian of width sigma and
// returns the rebuilt flux clamped to [0, 1]. Beyond the grid the continuum
// is assumed flat.
func Smooth(flux []float64, step, sigma float64) ([]float64, error) {
	if len(flux) == 0 {
		return flux, nil
	}

	kernel, err := Kernel(sigma, step, len(flux)-1)
	if err != nil {
		return nil, err
	}

	absorption := make([]float64, len(flux))
	for i, v := range flux {
		absorption[i] = 1 - v
	}
	smoothed, err := conv.ConvolveMode(absorption, kernel, conv.ModeSame)
	if err != nil {
		return nil, fmt.Errorf("synth: smoothing: %w", err)
	}

	out := make([]float64, len(flux))
	for i, a := range smoothed {
		out[i] = core.Clamp(1-a, 0, 1)
	}
	return out, nil
}
