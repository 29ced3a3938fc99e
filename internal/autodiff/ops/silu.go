package ops

import "math"

// SiLU represents the SiLU (Swish) activation: y = x * sigmoid(x).
type SiLU struct{}

// Name returns "silu".
func (SiLU) Name() string { return "silu" }

// Arity returns 1.
func (SiLU) Arity() int { return 1 }

// Forward computes x * σ(x) and its derivative:
//
//	dy/dx = σ(x) + x * σ(x) * (1 - σ(x))
func (SiLU) Forward(in []float64) (float64, []float64) {
	x := in[0]
	s := 1.0 / (1.0 + math.Exp(-x))
	return x * s, []float64{s + x*s*(1-s)}
}
