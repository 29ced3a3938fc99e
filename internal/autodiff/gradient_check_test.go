package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// numericalGradient computes df/dx[i] using central differences.
func numericalGradient(f func([]float64) float64, x []float64, i int) float64 {
	const h = 1e-6
	plus := append([]float64{}, x...)
	minus := append([]float64{}, x...)
	plus[i] += h
	minus[i] -= h
	return (f(plus) - f(minus)) / (2 * h)
}

// checkGradients builds the graph for f at x, runs Backward, and compares each
// leaf gradient to a finite-difference estimate.
func checkGradients(t *testing.T, x []float64, build func([]*autodiff.Value) *autodiff.Value) {
	t.Helper()

	leaves := make([]*autodiff.Value, len(x))
	for i, v := range x {
		leaves[i] = autodiff.NewValue(v)
	}
	out := build(leaves)
	out.Backward()

	f := func(in []float64) float64 {
		vs := make([]*autodiff.Value, len(in))
		for i, v := range in {
			vs[i] = autodiff.NewValue(v)
		}
		return build(vs).Value()
	}

	for i, leaf := range leaves {
		assert.InDelta(t, numericalGradient(f, x, i), leaf.Grad(), 1e-5, "leaf %d", i)
	}
}

// TestNumericalGradient_Neuron tests a single sigmoid neuron.
func TestNumericalGradient_Neuron(t *testing.T) {
	checkGradients(t, []float64{0.7, -1.2, 0.3, 0.9, 0.05}, func(v []*autodiff.Value) *autodiff.Value {
		x1, x2, w1, w2, b := v[0], v[1], v[2], v[3], v[4]
		return autodiff.Sigmoid(autodiff.Add(autodiff.Add(autodiff.Mul(x1, w1), autodiff.Mul(x2, w2)), b))
	})
}

// TestNumericalGradient_Composite tests a graph mixing every op.
func TestNumericalGradient_Composite(t *testing.T) {
	checkGradients(t, []float64{1.3, 0.4, -0.6}, func(v []*autodiff.Value) *autodiff.Value {
		a, b, c := v[0], v[1], v[2]
		num := autodiff.Add(autodiff.Tanh(autodiff.Mul(a, b)), autodiff.Exp(c))
		den := autodiff.Add(autodiff.Pow(a, 2), autodiff.Sigmoid(c))
		q := autodiff.Div(num, den)
		return autodiff.Sub(autodiff.Log(autodiff.Add(q, autodiff.Pow(b, 2))), autodiff.Neg(autodiff.ReLU(a)))
	})
}

// TestNumericalGradient_Trig tests the periodic and root ops.
func TestNumericalGradient_Trig(t *testing.T) {
	checkGradients(t, []float64{0.9, 2.5, -0.4}, func(v []*autodiff.Value) *autodiff.Value {
		a, b, c := v[0], v[1], v[2]
		return autodiff.Add(
			autodiff.Mul(autodiff.Sin(a), autodiff.Sqrt(b)),
			autodiff.Sub(autodiff.Cos(autodiff.Mul(a, c)), autodiff.SiLU(c)),
		)
	})
}

// TestNumericalGradient_SharedWeight tests a weight reused across samples.
func TestNumericalGradient_SharedWeight(t *testing.T) {
	checkGradients(t, []float64{0.8, -0.2}, func(v []*autodiff.Value) *autodiff.Value {
		w, b := v[0], v[1]
		var total *autodiff.Value
		for _, x := range []float64{0, 1, 2, 3} {
			y := autodiff.Sigmoid(autodiff.Add(autodiff.Mul(autodiff.NewValue(x), w), b))
			if total == nil {
				total = y
				continue
			}
			total = autodiff.Add(total, y)
		}
		return total
	})
}

// cube is a user-defined operation registered through Apply.
type cube struct{}

func (cube) Name() string { return "cube" }
func (cube) Arity() int   { return 1 }
func (cube) Forward(in []float64) (float64, []float64) {
	x := in[0]
	return x * x * x, []float64{3 * x * x}
}

// fma is a three-operand user-defined operation: a*b + c.
type fma struct{}

func (fma) Name() string { return "fma" }
func (fma) Arity() int   { return 3 }
func (fma) Forward(in []float64) (float64, []float64) {
	return in[0]*in[1] + in[2], []float64{in[1], in[0], 1}
}

// TestApply_CustomOperation tests that Backward handles ops it has never seen.
func TestApply_CustomOperation(t *testing.T) {
	x := autodiff.NewValue(2)
	y := autodiff.Apply(cube{}, x)

	assert.Equal(t, 8.0, y.Value())
	assert.Equal(t, "cube", y.Op())
	require.Equal(t, 1, y.NumEdges())

	y.Backward()
	assert.Equal(t, 12.0, x.Grad())

	checkGradients(t, []float64{0.5, -1.5, 2}, func(v []*autodiff.Value) *autodiff.Value {
		return autodiff.Sigmoid(autodiff.Apply(fma{}, autodiff.Apply(cube{}, v[0]), v[1], v[2]))
	})
}

// badOp returns the wrong number of local gradients.
type badOp struct{}

func (badOp) Name() string { return "bad" }
func (badOp) Arity() int   { return 2 }
func (badOp) Forward(in []float64) (float64, []float64) {
	return in[0] + in[1], []float64{1}
}

// TestApply_ContractViolations tests that malformed operations panic.
func TestApply_ContractViolations(t *testing.T) {
	a, b := autodiff.NewValue(1), autodiff.NewValue(2)

	assert.PanicsWithValue(t, "autodiff: cube expects 1 operands, got 2", func() {
		autodiff.Apply(cube{}, a, b)
	})
	assert.PanicsWithValue(t, "autodiff: bad returned 1 local gradients for 2 operands", func() {
		autodiff.Apply(badOp{}, a, b)
	})
	assert.Panics(t, func() {
		autodiff.Add(a, nil)
	})
}

// TestPow_Gradient tests the constant exponent receives no edge.
func TestPow_Gradient(t *testing.T) {
	x := autodiff.NewValue(3)
	y := autodiff.Pow(x, 2)

	require.Equal(t, 1, y.NumEdges())
	y.Backward()
	assert.Equal(t, 9.0, y.Value())
	assert.InDelta(t, 6.0, x.Grad(), 1e-12)
	assert.False(t, math.IsNaN(x.Grad()))
}
