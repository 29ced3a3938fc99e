package ops

// ReLU represents the rectified linear unit: max(0, x).
//
// The derivative at exactly x = 0 is taken as 0.
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Arity returns 1.
func (ReLU) Arity() int { return 1 }

// Forward computes max(0, x).
func (ReLU) Forward(in []float64) (float64, []float64) {
	if in[0] > 0 {
		return in[0], []float64{1}
	}
	return 0, []float64{0}
}
