package sink

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// Plot renders the spectrum as a line plot. The image format follows the
// file extension (png, jpg, pdf, svg, eps, tif).
type Plot struct {
	Path   string
	Title  string
	Width  vg.Length
	Height vg.Length
}

// NewPlot returns a 16x8 inch plot sink titled "Resulting Spectrum".
func NewPlot(path string) *Plot {
	return &Plot{
		Path:   path,
		Title:  "Resulting Spectrum",
		Width:  16 * vg.Inch,
		Height: 8 * vg.Inch,
	}
}

// Build constructs the plot without saving it.
func (p *Plot) Build(res *synth.Result) (*plot.Plot, error) {
	if err := checkResult(res); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(res.Wavelengths))
	for i, x := range res.Wavelengths {
		pts[i].X = x
		pts[i].Y = res.Flux[i]
	}

	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = "Wavelength (Angstrom)"
	pl.Y.Label.Text = "Spectrum"
	pl.Add(plotter.NewGrid())

	ln, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("sink: plot line: %w", err)
	}
	ln.LineStyle.Color = color.RGBA{R: 128, B: 128, A: 255}
	pl.Add(ln)
	return pl, nil
}

// Write implements Sink.
func (p *Plot) Write(ctx context.Context, res *synth.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pl, err := p.Build(res)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sink: create %s: %w", dir, err)
		}
	}
	if err := pl.Save(p.Width, p.Height, p.Path); err != nil {
		return fmt.Errorf("sink: save plot %s: %w", p.Path, err)
	}
	return nil
}
