package sink

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// DefaultComment is the leading comment line of the data file.
const DefaultComment = "# data file from generate.cpp"

// CSV writes a two-column wavelength,spectrum table with ten fixed decimals.
type CSV struct {
	w       io.Writer
	comment string
}

// NewCSV returns a CSV sink writing to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: w, comment: DefaultComment}
}

// WithComment replaces the leading comment line. An empty comment omits it.
func (c *CSV) WithComment(comment string) *CSV {
	c.comment = comment
	return c
}

// Write implements Sink.
func (c *CSV) Write(ctx context.Context, res *synth.Result) error {
	if err := checkResult(res); err != nil {
		return err
	}

	bw := bufio.NewWriter(c.w)
	if c.comment != "" {
		if _, err := fmt.Fprintln(bw, c.comment); err != nil {
			return fmt.Errorf("sink: write csv comment: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw, "wavelengths,spectrum"); err != nil {
		return fmt.Errorf("sink: write csv header: %w", err)
	}
	for i, x := range res.Wavelengths {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%.10f,%.10f\n", x, res.Flux[i]); err != nil {
			return fmt.Errorf("sink: write csv row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sink: flush csv: %w", err)
	}
	return nil
}

// CSVFile writes the CSV table to a file, creating parent directories.
type CSVFile struct {
	Path string
}

// Write implements Sink.
func (f CSVFile) Write(ctx context.Context, res *synth.Result) (err error) {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sink: create %s: %w", dir, err)
		}
	}
	out, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("sink: create %s: %w", f.Path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("sink: close %s: %w", f.Path, cerr)
		}
	}()
	return NewCSV(out).Write(ctx, res)
}
