package ops

import "math"

// Sigmoid represents the logistic activation: σ(x) = 1 / (1 + exp(-x)).
//
// The derivative is expressed through the output: dσ/dx = σ(x) * (1 - σ(x)).
// Very large |x| may saturate to exactly 0 or 1, which gives a zero derivative.
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Arity returns 1.
func (Sigmoid) Arity() int { return 1 }

// Forward computes σ(x).
func (Sigmoid) Forward(in []float64) (float64, []float64) {
	s := 1.0 / (1.0 + math.Exp(-in[0]))
	return s, []float64{s * (1 - s)}
}
