package nn

import (
	"math"
	"math/rand"
)

// Initializer produces initial parameter values.
type Initializer func() float64

// Uniform returns values drawn uniformly from [lo, hi).
//
//nolint:gosec // Using math/rand for weight initialization (not security-critical)
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return func() float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}

// Xavier (Glorot) initialization for weights.
//
// Values are drawn from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func Xavier(rng *rand.Rand, fanIn, fanOut int) Initializer {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform(rng, -bound, bound)
}

// Constant returns the same value every time.
func Constant(c float64) Initializer {
	return func() float64 {
		return c
	}
}
