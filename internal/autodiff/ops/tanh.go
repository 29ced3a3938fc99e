package ops

import "math"

// Tanh represents the hyperbolic tangent activation.
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Arity returns 1.
func (Tanh) Arity() int { return 1 }

// Forward computes tanh(x) and 1 - tanh²(x).
func (Tanh) Forward(in []float64) (float64, []float64) {
	t := math.Tanh(in[0])
	return t, []float64{1 - t*t}
}
