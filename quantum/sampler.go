// SPDX-License-Identifier: MIT

package quantum

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler yields uniform samples in [0,1). Measurement draws exactly one
// sample per call.
type Sampler interface {
	Float64() float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() float64

// Float64 calls f.
func (f SamplerFunc) Float64() float64 { return f() }

// uniformSampler draws from a gonum Uniform(0,1) distribution.
type uniformSampler struct {
	dist distuv.Uniform
}

func (u uniformSampler) Float64() float64 { return u.dist.Rand() }

// seedMix decorrelates the second PCG stream word from the seed.
const seedMix = 0x9e3779b97f4a7c15

// defaultSampler draws from the process-wide math/rand/v2 source.
var defaultSampler Sampler = uniformSampler{dist: distuv.Uniform{Min: 0, Max: 1}}

// DefaultSampler returns the shared, non-deterministic sampler used when no
// WithSampler option is given.
func DefaultSampler() Sampler { return defaultSampler }

// NewSampler returns a deterministic sampler seeded with seed. Two samplers
// with the same seed produce the same sequence.
// A seeded sampler is not safe for concurrent use.
func NewSampler(seed uint64) Sampler {
	return uniformSampler{dist: distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: rand.NewPCG(seed, seed^seedMix),
	}}
}

// below1 is the largest float64 strictly below 1.
var below1 = math.Nextafter(1, 0)

// draw takes one sample and clamps it into [0,1).
func draw(s Sampler) float64 {
	u := s.Float64()
	switch {
	case u >= 1:
		return below1
	case u < 0 || math.IsNaN(u):
		return 0
	}

	return u
}
