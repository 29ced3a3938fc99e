package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

type operation interface {
	Name() string
	Arity() int
	Forward(in []float64) (float64, []float64)
}

// numericalGrad estimates d(op)/d(in[i]) with central differences.
func numericalGrad(op operation, in []float64, i int) float64 {
	const h = 1e-6
	plus := append([]float64{}, in...)
	minus := append([]float64{}, in...)
	plus[i] += h
	minus[i] -= h
	fp, _ := op.Forward(plus)
	fm, _ := op.Forward(minus)
	return (fp - fm) / (2 * h)
}

// TestOps_LocalGradsMatchFiniteDifferences checks every op at a few points.
func TestOps_LocalGradsMatchFiniteDifferences(t *testing.T) {
	tests := []struct {
		op     operation
		points [][]float64
	}{
		{ops.Add{}, [][]float64{{1, 2}, {-3, 0.5}}},
		{ops.Sub{}, [][]float64{{1, 2}, {-3, 0.5}}},
		{ops.Mul{}, [][]float64{{1, 2}, {-3, 0.5}, {0, 4}}},
		{ops.Div{}, [][]float64{{1, 2}, {-3, 0.5}}},
		{ops.Neg{}, [][]float64{{1}, {-2.5}}},
		{ops.Sigmoid{}, [][]float64{{0}, {0.6}, {-3}, {4}}},
		{ops.Tanh{}, [][]float64{{0}, {0.3}, {-1.2}}},
		{ops.ReLU{}, [][]float64{{1.5}, {-0.5}}},
		{ops.Exp{}, [][]float64{{0}, {1}, {-2}}},
		{ops.Log{}, [][]float64{{1}, {0.5}, {3}}},
		{ops.Pow{P: 3}, [][]float64{{2}, {-1.5}}},
		{ops.Pow{P: 0.5}, [][]float64{{4}, {0.25}}},
		{ops.Sqrt{}, [][]float64{{4}, {0.3}}},
		{ops.Sin{}, [][]float64{{0}, {1.1}, {-2}}},
		{ops.Cos{}, [][]float64{{0}, {1.1}, {-2}}},
		{ops.SiLU{}, [][]float64{{0}, {1.5}, {-2}}},
	}

	for _, tt := range tests {
		t.Run(tt.op.Name(), func(t *testing.T) {
			for _, in := range tt.points {
				_, local := tt.op.Forward(in)
				require.Len(t, local, tt.op.Arity())
				require.Len(t, in, tt.op.Arity())
				for i := range in {
					assert.InDelta(t, numericalGrad(tt.op, in, i), local[i], 1e-5, "point %v operand %d", in, i)
				}
			}
		})
	}
}

// TestAdd_Forward tests addition.
func TestAdd_Forward(t *testing.T) {
	out, local := ops.Add{}.Forward([]float64{2, 3})
	assert.Equal(t, 5.0, out)
	assert.Equal(t, []float64{1, 1}, local)
}

// TestMul_Forward tests that each local derivative is the other operand.
func TestMul_Forward(t *testing.T) {
	out, local := ops.Mul{}.Forward([]float64{2, 3})
	assert.Equal(t, 6.0, out)
	assert.Equal(t, []float64{3, 2}, local)
}

// TestSigmoid_Forward tests σ(0) = 0.5 and σ'(0) = 0.25.
func TestSigmoid_Forward(t *testing.T) {
	out, local := ops.Sigmoid{}.Forward([]float64{0})
	assert.Equal(t, 0.5, out)
	assert.Equal(t, []float64{0.25}, local)
}

// TestReLU_AtZero tests the derivative convention at the kink.
func TestReLU_AtZero(t *testing.T) {
	out, local := ops.ReLU{}.Forward([]float64{0})
	assert.Equal(t, 0.0, out)
	assert.Equal(t, []float64{0}, local)
}

// TestDiv_ByZero tests that division by zero is not guarded.
func TestDiv_ByZero(t *testing.T) {
	out, local := ops.Div{}.Forward([]float64{1, 0})
	assert.True(t, math.IsInf(out, 1))
	assert.True(t, math.IsInf(local[0], 1))
}

// TestLog_NonPositive tests that ln of non-positive values follows IEEE-754.
func TestLog_NonPositive(t *testing.T) {
	out, _ := ops.Log{}.Forward([]float64{0})
	assert.True(t, math.IsInf(out, -1))
	out, _ = ops.Log{}.Forward([]float64{-1})
	assert.True(t, math.IsNaN(out))
}

// TestArity tests the declared operand counts.
func TestArity(t *testing.T) {
	for _, op := range []operation{ops.Add{}, ops.Sub{}, ops.Mul{}, ops.Div{}} {
		assert.Equal(t, 2, op.Arity(), op.Name())
	}
	unary := []operation{
		ops.Neg{}, ops.Sigmoid{}, ops.Tanh{}, ops.ReLU{}, ops.Exp{}, ops.Log{},
		ops.Pow{P: 2}, ops.Sqrt{}, ops.Sin{}, ops.Cos{}, ops.SiLU{},
	}
	for _, op := range unary {
		assert.Equal(t, 1, op.Arity(), op.Name())
	}
}

// TestSiLU_Forward tests SiLU(0) = 0 with slope 0.5.
func TestSiLU_Forward(t *testing.T) {
	out, local := ops.SiLU{}.Forward([]float64{0})
	assert.Equal(t, 0.0, out)
	assert.Equal(t, []float64{0.5}, local)
}

// TestSqrt_AtZero tests the unguarded infinite slope at zero.
func TestSqrt_AtZero(t *testing.T) {
	out, local := ops.Sqrt{}.Forward([]float64{0})
	assert.Equal(t, 0.0, out)
	assert.True(t, math.IsInf(local[0], 1))
}
