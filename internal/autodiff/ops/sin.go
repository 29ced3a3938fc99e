package ops

import "math"

// Sin represents the sine function.
type Sin struct{}

// Name returns "sin".
func (Sin) Name() string { return "sin" }

// Arity returns 1.
func (Sin) Arity() int { return 1 }

// Forward computes sin(x) and cos(x).
func (Sin) Forward(in []float64) (float64, []float64) {
	return math.Sin(in[0]), []float64{math.Cos(in[0])}
}
