package ops

// Add represents addition: output = a + b.
//
// The local derivative with respect to either addend is 1,
// independent of the operand values.
type Add struct{}

// Name returns "add".
func (Add) Name() string { return "add" }

// Arity returns 2.
func (Add) Arity() int { return 2 }

// Forward computes a + b.
func (Add) Forward(in []float64) (float64, []float64) {
	return in[0] + in[1], []float64{1, 1}
}
