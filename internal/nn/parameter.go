package nn

import "github.com/born-ml/scalargrad/internal/autodiff"

// Parameter represents a trainable scalar in a network.
//
// The parameter owns a leaf value that graphs reference during Forward.
// Because values are immutable once built, an update replaces the leaf
// instead of modifying it; graphs built earlier keep the old leaf.
//
// Example:
//
//	w := nn.NewParameter("w1", 0.5)
//	y := autodiff.Mul(x, w.Value())
//	y.Backward()
//	w.Grad() // dy/dw
type Parameter struct {
	name  string
	value *autodiff.Value
}

// NewParameter creates a new trainable parameter with the given initial data.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name:  name,
		value: autodiff.NewValue(data),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current leaf node.
func (p *Parameter) Value() *autodiff.Value {
	return p.value
}

// Data returns the current numeric value.
func (p *Parameter) Data() float64 {
	return p.value.Value()
}

// Grad returns the gradient accumulated on the current leaf.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the gradient of the current leaf.
//
// This should be called before each backward pass to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}

// SetData replaces the leaf with a fresh one holding data and a zero gradient.
func (p *Parameter) SetData(data float64) {
	p.value = autodiff.NewValue(data)
}

// Update adds delta to the parameter's data.
func (p *Parameter) Update(delta float64) {
	p.SetData(p.Data() + delta)
}
