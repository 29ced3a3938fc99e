package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// TestSGD_SimpleUpdate tests param -= lr * grad.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := nn.NewParameter("x", 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter{x}, optim.SGDConfig{LR: 0.1})

	// y = 3x, dy/dx = 3
	y := autodiff.Mul(autodiff.NewValue(3), x.Value())
	y.Backward()
	require.Equal(t, 3.0, x.Grad())

	optimizer.Step()

	assert.InDelta(t, 2.0-0.1*3, x.Data(), 1e-12)
	assert.Equal(t, 0.0, x.Grad())
}

// TestSGD_DefaultLR tests the constructor default.
func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, optim.DefaultLR, optimizer.GetLR())

	optimizer.SetLR(0.01)
	assert.Equal(t, 0.01, optimizer.GetLR())
}

// TestSGD_ZeroGrad tests that ZeroGrad clears every parameter.
func TestSGD_ZeroGrad(t *testing.T) {
	a, b := nn.NewParameter("a", 1), nn.NewParameter("b", 2)
	optimizer := optim.NewSGD([]*nn.Parameter{a, b}, optim.SGDConfig{LR: 0.1})

	autodiff.Mul(a.Value(), b.Value()).Backward()
	require.NotZero(t, a.Grad())
	require.NotZero(t, b.Grad())

	optimizer.ZeroGrad()
	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
	assert.Len(t, optimizer.Params(), 2)
}

// TestSGD_Minimizes tests convergence on f(w) = (w - 3)².
func TestSGD_Minimizes(t *testing.T) {
	w := nn.NewParameter("w", 0)
	var opt optim.Optimizer = optim.NewSGD([]*nn.Parameter{w}, optim.SGDConfig{LR: 0.1})

	for i := 0; i < 200; i++ {
		opt.ZeroGrad()
		diff := autodiff.Sub(w.Value(), autodiff.NewValue(3))
		autodiff.Mul(diff, diff).Backward()
		opt.Step()
	}

	assert.InDelta(t, 3.0, w.Data(), 1e-6)
}
