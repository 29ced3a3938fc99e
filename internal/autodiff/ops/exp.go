package ops

import "math"

// Exp represents the natural exponential: output = e^x.
type Exp struct{}

// Name returns "exp".
func (Exp) Name() string { return "exp" }

// Arity returns 1.
func (Exp) Arity() int { return 1 }

// Forward computes e^x, which is also its own derivative.
func (Exp) Forward(in []float64) (float64, []float64) {
	e := math.Exp(in[0])
	return e, []float64{e}
}
