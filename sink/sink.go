// Package sink delivers synthesized spectra to their consumers: delimited
// text files, plots, a SQLite run archive and human-readable summaries.
package sink

import (
	"context"
	"errors"

	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// ErrNoResult is returned when a sink receives a nil result.
var ErrNoResult = errors.New("sink: nil result")

// Sink consumes a synthesized spectrum.
type Sink interface {
	Write(ctx context.Context, res *synth.Result) error
}

// Func adapts a function to the Sink interface.
type Func func(ctx context.Context, res *synth.Result) error

// Write calls f.
func (f Func) Write(ctx context.Context, res *synth.Result) error {
	return f(ctx, res)
}

// Multi writes to every sink in order and stops at the first error.
type Multi []Sink

// Write implements Sink.
func (m Multi) Write(ctx context.Context, res *synth.Result) error {
	for _, s := range m {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Write(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

func checkResult(res *synth.Result) error {
	if res == nil {
		return ErrNoResult
	}
	if len(res.Wavelengths) != len(res.Flux) {
		return errors.New("sink: wavelengths and flux lengths differ")
	}
	return nil
}
