// Package random supplies the uniform sampling the tree generator draws from.
//
// Production code samples from a seeded *rand.Rand. Tests swap in Fixed to
// make every draw, and therefore every generated tree, reproducible.
package random

import (
	"math/rand"
	"time"
)

// A Sampler returns values uniformly distributed in [min, max).
type Sampler interface {
	Uniform(min, max float64) float64
}

// Rand samples from a math/rand source.
type Rand struct {
	r *rand.Rand
}

var _ Sampler = (*Rand)(nil)

// New returns a Sampler seeded with seed. A zero seed draws one from the clock.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Uniform(min, max float64) float64 {
	return r.r.Float64()*(max-min) + min
}

// Fixed always returns the same fraction of the requested range.
// Fixed(0.5) returns the midpoint of every range.
type Fixed float64

var _ Sampler = Fixed(0)

// Midpoint is the sampler used by deterministic tests.
const Midpoint = Fixed(0.5)

func (f Fixed) Uniform(min, max float64) float64 {
	return float64(f)*(max-min) + min
}

// Sequence replays fractions in order, wrapping around once exhausted.
// An empty Sequence behaves like Midpoint.
type Sequence struct {
	Fractions []float64
	next      int
}

var _ Sampler = (*Sequence)(nil)

func (s *Sequence) Uniform(min, max float64) float64 {
	if len(s.Fractions) == 0 {
		return Midpoint.Uniform(min, max)
	}
	f := s.Fractions[s.next%len(s.Fractions)]
	s.next++
	return f*(max-min) + min
}
