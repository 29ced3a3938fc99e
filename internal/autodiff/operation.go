package autodiff

import "fmt"

// Operation is a differentiable scalar function of a fixed number of operands.
//
// Forward receives the operands' current values and returns the result together
// with the partial derivative of the result with respect to each operand,
// evaluated at those same values. The derivatives are recorded as edges and
// never recomputed, so Backward needs no knowledge of which operation produced
// a node.
//
// Example (a user-defined square op):
//
//	type squareOp struct{}
//
//	func (squareOp) Name() string { return "square" }
//	func (squareOp) Arity() int   { return 1 }
//	func (squareOp) Forward(in []float64) (float64, []float64) {
//	    return in[0] * in[0], []float64{2 * in[0]}
//	}
//
//	y := autodiff.Apply(squareOp{}, x)
type Operation interface {
	// Name identifies the operation in Value.Op and String output.
	Name() string

	// Arity is the number of operands the operation consumes.
	Arity() int

	// Forward computes the result and one local derivative per operand.
	Forward(inputs []float64) (out float64, localGrads []float64)
}

// Apply runs op on the given operands and returns the recorded result node.
//
// Apply panics if the number of operands differs from op.Arity() or if
// op.Forward returns a different number of local derivatives. Both are
// programming errors in the operation, not runtime conditions.
func Apply(op Operation, inputs ...*Value) *Value {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("autodiff: %s expects %d operands, got %d", op.Name(), op.Arity(), len(inputs)))
	}

	data := make([]float64, len(inputs))
	for i, in := range inputs {
		if in == nil {
			panic(fmt.Sprintf("autodiff: %s operand %d is nil", op.Name(), i))
		}
		data[i] = in.data
	}

	out, localGrads := op.Forward(data)
	if len(localGrads) != len(inputs) {
		panic(fmt.Sprintf("autodiff: %s returned %d local gradients for %d operands",
			op.Name(), len(localGrads), len(inputs)))
	}

	parents := make([]*Value, len(inputs))
	copy(parents, inputs)

	return newResult(op.Name(), out, parents, localGrads)
}
