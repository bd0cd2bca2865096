// Package conv provides linear convolution of real sequences.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain sum, used for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for longer kernels
//
// [Convolve] picks between them by kernel length; [ConvolveMode] additionally
// trims the result, so that
//
//	smoothed, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// returns a slice aligned with signal when kernel is centered (odd length).
package conv
