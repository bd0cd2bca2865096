package params

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// Read parses four whitespace-separated values "start end resolution nlines".
// Values are taken positionally and not range checked.
func Read(r io.Reader) (synth.Request, error) {
	var req synth.Request
	if _, err := fmt.Fscan(r, &req.Start, &req.End, &req.Resolution, &req.Lines); err != nil {
		return synth.Request{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return req, nil
}

// LoadFile reads parameters from path. Files ending in .hcl are decoded as
// HCL, anything else as the positional format.
func LoadFile(path string) (Params, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return LoadHCL(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Params{}, fmt.Errorf("params: open %s: %w", path, err)
	}
	defer f.Close()

	req, err := Read(f)
	if err != nil {
		return Params{}, fmt.Errorf("params: %s: %w", path, err)
	}
	return Params{Request: req}, nil
}
