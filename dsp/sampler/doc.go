// Package sampler draws sequences of normally and uniformly distributed values.
//
// Every call to [Sampler.Normal] or [Sampler.Uniform] obtains a fresh [Source]
// from the sampler's factory. The default factory seeds from operating-system
// entropy, so consecutive calls are independent and no generator state is
// shared between them. Tests substitute a deterministic factory:
//
//	s := sampler.New(sampler.WithSeed(42))          // same values on every call
//	s := sampler.New(sampler.WithSource(func() sampler.Source {
//		return sampler.NewSequence([]float64{0.5}, []float64{0.25})
//	}))
package sampler
