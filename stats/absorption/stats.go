// Package absorption summarizes synthesized absorption spectra.
package absorption

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when wavelengths and flux differ in length.
var ErrLengthMismatch = errors.New("absorption: wavelengths and flux lengths differ")

// Stats holds summary statistics of a normalized spectrum.
type Stats struct {
	Length          int
	Mean            float64 // mean flux
	RMS             float64
	Variance        float64 // population variance of flux
	Min             float64
	MinPos          int
	MinWavelength   float64
	Max             float64
	MaxDepth        float64 // 1 - Min
	EquivalentWidth float64 // integral of (1 - flux) over wavelength
}

// Calculate computes all statistics in a single pass, using Welford's
// algorithm for the variance.
func Calculate(wavelengths, flux []float64) (Stats, error) {
	if len(wavelengths) != len(flux) {
		return Stats{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wavelengths), len(flux))
	}
	n := len(flux)
	if n == 0 {
		return Stats{}, nil
	}

	var (
		mean   float64
		m2     float64
		sumSq  float64
		minVal = flux[0]
		minPos int
		maxVal = flux[0]
		ew     float64
	)

	for i, x := range flux {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		sumSq += x * x

		if x < minVal {
			minVal = x
			minPos = i
		}
		if x > maxVal {
			maxVal = x
		}

		if i > 0 {
			dx := wavelengths[i] - wavelengths[i-1]
			ew += 0.5 * dx * ((1 - flux[i-1]) + (1 - x))
		}
	}

	return Stats{
		Length:          n,
		Mean:            mean,
		RMS:             math.Sqrt(sumSq / float64(n)),
		Variance:        m2 / float64(n),
		Min:             minVal,
		MinPos:          minPos,
		MinWavelength:   wavelengths[minPos],
		Max:             maxVal,
		MaxDepth:        1 - minVal,
		EquivalentWidth: ew,
	}, nil
}

// EquivalentWidth integrates 1 - flux over wavelength with the trapezoid rule.
func EquivalentWidth(wavelengths, flux []float64) (float64, error) {
	if len(wavelengths) != len(flux) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wavelengths), len(flux))
	}
	ew := 0.0
	for i := 1; i < len(flux); i++ {
		dx := wavelengths[i] - wavelengths[i-1]
		ew += 0.5 * dx * ((1 - flux[i-1]) + (1 - flux[i]))
	}
	return ew, nil
}
