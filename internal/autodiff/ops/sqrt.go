package ops

import "math"

// Sqrt represents the square root: output = √x.
type Sqrt struct{}

// Name returns "sqrt".
func (Sqrt) Name() string { return "sqrt" }

// Arity returns 1.
func (Sqrt) Arity() int { return 1 }

// Forward computes √x and 1 / (2√x).
//
// At x = 0 the derivative is +Inf; for x < 0 both are NaN.
func (Sqrt) Forward(in []float64) (float64, []float64) {
	s := math.Sqrt(in[0])
	return s, []float64{0.5 / s}
}
