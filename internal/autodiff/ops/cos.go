package ops

import "math"

// Cos represents the cosine function.
type Cos struct{}

// Name returns "cos".
func (Cos) Name() string { return "cos" }

// Arity returns 1.
func (Cos) Arity() int { return 1 }

// Forward computes cos(x) and -sin(x).
func (Cos) Forward(in []float64) (float64, []float64) {
	return math.Cos(in[0]), []float64{-math.Sin(in[0])}
}
