package ops

// Mul represents multiplication: output = a * b.
//
// Product rule: the derivative with respect to one factor is the other
// factor's value at construction time.
type Mul struct{}

// Name returns "mul".
func (Mul) Name() string { return "mul" }

// Arity returns 2.
func (Mul) Arity() int { return 2 }

// Forward computes a * b.
func (Mul) Forward(in []float64) (float64, []float64) {
	a, b := in[0], in[1]
	return a * b, []float64{b, a}
}
