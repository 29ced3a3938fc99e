package ops

import "math"

// Pow raises its operand to a constant exponent: output = x^P.
//
// The exponent is part of the operation, not an operand, so no gradient
// flows to it.
type Pow struct {
	P float64
}

// Name returns "pow".
func (Pow) Name() string { return "pow" }

// Arity returns 1.
func (Pow) Arity() int { return 1 }

// Forward computes x^P and P * x^(P-1).
func (p Pow) Forward(in []float64) (float64, []float64) {
	x := in[0]
	return math.Pow(x, p.P), []float64{p.P * math.Pow(x, p.P-1)}
}
