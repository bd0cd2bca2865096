package synth

import (
	"testing"

	"github.com/cwbudde/algo-spectra/dsp/sampler"
)

func BenchmarkSynthesize(b *testing.B) {
	cases := []struct {
		name string
		req  Request
	}{
		{"2048x99", Request{Start: 900, End: 2900, Resolution: 2048, Lines: 99}},
		{"16384x1000", Request{Start: 900, End: 2900, Resolution: 16384, Lines: 1000}},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			s := New(sampler.New(sampler.WithSeed(1)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := s.Synthesize(c.req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
