package params

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/cwbudde/algo-spectra/dsp/grid"
	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// hclFile is the decoded shape of an HCL parameter file.
type hclFile struct {
	Start      float64  `hcl:"start"`
	End        float64  `hcl:"end"`
	Resolution int      `hcl:"resolution"`
	Lines      int      `hcl:"lines"`
	LineWidth  *float64 `hcl:"line_width,optional"`
	DepthSigma *float64 `hcl:"depth_sigma,optional"`
	Smoothing  *float64 `hcl:"smoothing,optional"`
	Grid       *string  `hcl:"grid,optional"`
}

// EvalContext returns the variables and functions available to parameter
// expressions: unit factors angstrom, nm and um (wavelengths are in
// angstrom) and the numeric functions abs, ceil, floor, max, min and pow.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"angstrom": cty.NumberIntVal(1),
			"nm":       cty.NumberIntVal(10),
			"um":       cty.NumberIntVal(10000),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
			"max":   stdlib.MaxFunc,
			"min":   stdlib.MinFunc,
			"pow":   stdlib.PowFunc,
		},
	}
}

// LoadHCL reads an HCL parameter file.
func LoadHCL(path string) (Params, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("params: read %s: %w", path, err)
	}
	return ParseHCL(src, path)
}

// ParseHCL decodes HCL parameter source; filename is used in diagnostics.
func ParseHCL(src []byte, filename string) (Params, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Params{}, fmt.Errorf("%w: parse %s: %s", ErrMalformed, filename, diags.Error())
	}

	var decoded hclFile
	if diags := gohcl.DecodeBody(file.Body, EvalContext(), &decoded); diags.HasErrors() {
		return Params{}, fmt.Errorf("%w: decode %s: %s", ErrMalformed, filename, diags.Error())
	}

	p := Params{
		Request: synth.Request{
			Start:      decoded.Start,
			End:        decoded.End,
			Resolution: decoded.Resolution,
			Lines:      decoded.Lines,
		},
		LineWidth:  decoded.LineWidth,
		DepthSigma: decoded.DepthSigma,
		Smoothing:  decoded.Smoothing,
	}
	if decoded.Grid != nil {
		mode, err := grid.ParseMode(*decoded.Grid)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %s: %v", ErrMalformed, filename, err)
		}
		p.GridMode = &mode
	}
	return p, nil
}
