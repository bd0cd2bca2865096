package sink

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/dsp/synth"
	"github.com/cwbudde/algo-spectra/stats/absorption"
)

// Summary prints a tab-aligned report of run parameters and spectrum statistics.
type Summary struct {
	w io.Writer
}

// NewSummary returns a Summary sink writing to w.
func NewSummary(w io.Writer) *Summary {
	return &Summary{w: w}
}

// Write implements Sink.
func (s *Summary) Write(_ context.Context, res *synth.Result) error {
	if err := checkResult(res); err != nil {
		return err
	}
	st, err := absorption.Calculate(res.Wavelengths, res.Flux)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Interval", fmt.Sprintf("[%g, %g)", res.Request.Start, res.Request.End)},
		{"Resolution", fmt.Sprintf("%d", res.Request.Resolution)},
		{"Grid points", fmt.Sprintf("%d (%s)", st.Length, res.Config.GridMode)},
		{"Lines", fmt.Sprintf("%d", len(res.Lines))},
		{"Line width", fmt.Sprintf("%g", res.Config.LineWidth)},
		{"Mean flux", fmt.Sprintf("%.6f", st.Mean)},
		{"RMS flux", fmt.Sprintf("%.6f", st.RMS)},
		{"Deepest point", fmt.Sprintf("%.6f at %.4f", st.Min, st.MinWavelength)},
		{"Equivalent width", fmt.Sprintf("%.6f", st.EquivalentWidth)},
		{"Synthesis time", res.Elapsed.String()},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return fmt.Errorf("sink: write summary: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("sink: flush summary: %w", err)
	}
	return nil
}
