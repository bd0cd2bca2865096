package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Errors returned by sampling functions.
var (
	ErrInvalidCount = errors.New("sampler: count must be >= 0")
	ErrInvalidRange = errors.New("sampler: invalid distribution parameters")
)

// Source produces the raw variates a Sampler transforms.
//
// *rand.Rand satisfies Source.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value (mean 0, stddev 1).
	NormFloat64() float64
}

// Factory creates the Source used for a single sampling call.
type Factory func() Source

// Sampler draws value sequences from named distributions.
type Sampler struct {
	newSource Factory
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed makes every call reseed from seed, so repeated calls with the same
// arguments return identical values.
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.newSource = func() Source {
			return rand.New(rand.NewSource(seed))
		}
	}
}

// WithSource installs a custom source factory.
func WithSource(f Factory) Option {
	return func(s *Sampler) {
		if f != nil {
			s.newSource = f
		}
	}
}

// New creates a Sampler. Without options it reseeds from entropy on every call.
func New(opts ...Option) *Sampler {
	s := &Sampler{newSource: EntropySource}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// EntropySource returns a math/rand generator seeded from crypto/rand.
// If the entropy pool is unavailable it falls back to the wall clock.
func EntropySource() Source {
	var b [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return rand.New(rand.NewSource(seed))
}

// Normal returns count values drawn from N(mean, width^2).
func (s *Sampler) Normal(mean, width float64, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if !core.IsFinite(mean, width) || width < 0 {
		return nil, fmt.Errorf("%w: normal mean=%f width=%f", ErrInvalidRange, mean, width)
	}

	out := make([]float64, count)
	if count == 0 {
		return out, nil
	}

	src := s.newSource()
	for i := range out {
		out[i] = mean + width*src.NormFloat64()
	}
	return out, nil
}

// Uniform returns count values drawn uniformly from [low, high).
func (s *Sampler) Uniform(low, high float64, count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if !core.IsFinite(low, high) || high <= low {
		return nil, fmt.Errorf("%w: uniform low=%f high=%f", ErrInvalidRange, low, high)
	}

	out := make([]float64, count)
	if count == 0 {
		return out, nil
	}

	src := s.newSource()
	span := high - low
	below := math.Nextafter(high, low)
	for i := range out {
		v := low + span*src.Float64()
		if v >= high {
			v = below
		}
		out[i] = v
	}
	return out, nil
}
