// Package line evaluates Gaussian absorption-line profiles.
package line

import "math"

// DefaultWidth is the Gaussian sigma, in wavelength units, applied to every line.
const DefaultWidth = 4.0

// Line is one absorption feature.
type Line struct {
	Center float64 // wavelength of maximum absorption
	Depth  float64 // fractional intensity removed at Center, in [0, 1]
}

// Set is an ordered collection of lines, kept in draw order.
type Set []Line

// Gaussian returns depth * exp(-0.5 * (x-center)^2 / width^2).
func Gaussian(x, center, depth, width float64) float64 {
	d := x - center
	return depth * math.Exp(-0.5*d*d/(width*width))
}

// At returns the absorption of l at wavelength x.
func (l Line) At(x, width float64) float64 {
	return Gaussian(x, l.Center, l.Depth, width)
}

// TransmissionInto writes 1 - l.At(grid[j], width) into dst[j] for every j
// in range of both slices and returns the number of values written.
func (l Line) TransmissionInto(dst, grid []float64, width float64) int {
	n := len(dst)
	if len(grid) < n {
		n = len(grid)
	}
	for j := 0; j < n; j++ {
		dst[j] = 1 - Gaussian(grid[j], l.Center, l.Depth, width)
	}
	return n
}

// Centers returns the line centers in order.
func (s Set) Centers() []float64 {
	out := make([]float64, len(s))
	for i, l := range s {
		out[i] = l.Center
	}
	return out
}

// Depths returns the line depths in order.
func (s Set) Depths() []float64 {
	out := make([]float64, len(s))
	for i, l := range s {
		out[i] = l.Depth
	}
	return out
}
