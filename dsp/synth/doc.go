// Package synth synthesizes one-dimensional stellar absorption spectra.
//
// A synthesis run draws a set of absorption lines (uniform centers, folded
// normal depths), samples a wavelength grid over [start, end) and multiplies
// the per-line transmission profiles 1 - depth*exp(-0.5*((x-c)/w)^2) into a
// unit continuum:
//
//	s := synth.New(nil)
//	res, err := s.Synthesize(synth.Request{Start: 900, End: 2900, Resolution: 2048, Lines: 99})
//
// The grid length is settled once before any line is rendered: a stepped grid
// that overshoots the requested resolution because of floating-point
// accumulation loses its trailing points, so every line and the returned
// spectrum share one grid.
//
// [Render] is the deterministic half of the pipeline and accepts any line set,
// which makes fixed-line scenarios straightforward to reproduce.
package synth
