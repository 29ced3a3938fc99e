package ops

// Sub represents subtraction: output = a - b.
type Sub struct{}

// Name returns "sub".
func (Sub) Name() string { return "sub" }

// Arity returns 2.
func (Sub) Arity() int { return 2 }

// Forward computes a - b.
func (Sub) Forward(in []float64) (float64, []float64) {
	return in[0] - in[1], []float64{1, -1}
}

// Neg represents negation: output = -x.
type Neg struct{}

// Name returns "neg".
func (Neg) Name() string { return "neg" }

// Arity returns 1.
func (Neg) Arity() int { return 1 }

// Forward computes -x.
func (Neg) Forward(in []float64) (float64, []float64) {
	return -in[0], []float64{-1}
}
