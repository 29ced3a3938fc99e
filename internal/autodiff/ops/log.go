package ops

import "math"

// Log represents the natural logarithm: output = ln(x).
//
// Inputs must be positive for a finite result; ln(0) = -Inf and ln(x<0) = NaN
// propagate silently.
type Log struct{}

// Name returns "log".
func (Log) Name() string { return "log" }

// Arity returns 1.
func (Log) Arity() int { return 1 }

// Forward computes ln(x) and 1/x.
func (Log) Forward(in []float64) (float64, []float64) {
	x := in[0]
	return math.Log(x), []float64{1 / x}
}
