package absorption_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/stats/absorption"
)

func ExampleCalculate() {
	s, err := absorption.Calculate([]float64{0, 1, 2}, []float64{1, 0.5, 1})
	if err != nil {
		panic(err)
	}
	fmt.Printf("min=%.2f at %.0f ew=%.2f\n", s.Min, s.MinWavelength, s.EquivalentWidth)

	// Output:
	// min=0.50 at 1 ew=0.50
}
