// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every arithmetic or activation call builds a new Value that remembers which
// values it was computed from (its parents) together with the local derivative
// of its result with respect to each parent. Backward then walks that graph from
// an output value towards the leaves, accumulating gradients via the chain rule.
//
// Architecture:
//   - Value: scalar data + accumulated gradient + ordered edges to its parents
//   - Operation interface: Each op (Add, Mul, Sigmoid) computes its forward value
//     and local derivatives; Apply records them as edges
//   - Backward: topological single pass (default) or per-path propagation
//
// Usage:
//
//	x := autodiff.NewValue(2.0)
//	w := autodiff.NewValue(-3.0)
//	y := autodiff.Sigmoid(autodiff.Mul(x, w))
//
//	autodiff.Backward(y, 1.0)
//	fmt.Println(w.Grad()) // dy/dw = x * y * (1 - y)
//
// Gradients accumulate across Backward calls. Callers that reuse values between
// passes (shared weights) must reset them with ZeroGrad or ZeroGradAll first.
//
// Values are not safe for concurrent Backward calls that reach the same node.
package autodiff

import "fmt"

// Value is a node of the computation graph.
//
// The forward value and the edges are fixed at construction. Only the
// gradient changes afterwards, and only through Backward and ZeroGrad.
type Value struct {
	data       float64   // Forward-computed scalar
	grad       float64   // d(objective)/d(this), accumulated by Backward
	parents    []*Value  // Operands this value was computed from
	localGrads []float64 // d(this)/d(parent) for each parent, same order
	op         string    // Producing operation, "" for leaves
}

// Edge is a read-only view of one recorded (parent, local derivative) pair.
type Edge struct {
	Parent    *Value
	LocalGrad float64
}

// NewValue creates a leaf value with no edges and zero gradient.
//
// Any float64 is accepted, including NaN and ±Inf.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// newResult creates a derived value. parents and localGrads must have equal length.
func newResult(op string, data float64, parents []*Value, localGrads []float64) *Value {
	return &Value{
		data:       data,
		parents:    parents,
		localGrads: localGrads,
		op:         op,
	}
}

// Value returns the forward-computed scalar.
func (v *Value) Value() float64 {
	return v.data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the accumulated gradient of this value only.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the name of the operation that produced v, or "" for a leaf.
func (v *Value) Op() string {
	return v.op
}

// IsLeaf reports whether v has no recorded parents.
func (v *Value) IsLeaf() bool {
	return len(v.parents) == 0
}

// NumEdges returns the number of recorded edges.
func (v *Value) NumEdges() int {
	return len(v.parents)
}

// Edges returns a copy of the recorded edges in operand order.
func (v *Value) Edges() []Edge {
	edges := make([]Edge, len(v.parents))
	for i, p := range v.parents {
		edges[i] = Edge{Parent: p, LocalGrad: v.localGrads[i]}
	}
	return edges
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.op == "" {
		return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
	}
	return fmt.Sprintf("Value(op=%s, data=%g, grad=%g)", v.op, v.data, v.grad)
}
