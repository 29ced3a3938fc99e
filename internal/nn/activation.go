package nn

import "github.com/born-ml/scalargrad/internal/autodiff"

// Activation applies a unary autodiff function element-wise.
//
// Example:
//
//	sigmoid := nn.NewSigmoid()
//	output := sigmoid.Forward(hidden)
type Activation struct {
	name string
	fn   func(*autodiff.Value) *autodiff.Value
}

// NewSigmoid creates a sigmoid activation module.
func NewSigmoid() *Activation {
	return &Activation{name: "sigmoid", fn: autodiff.Sigmoid}
}

// NewTanh creates a tanh activation module.
func NewTanh() *Activation {
	return &Activation{name: "tanh", fn: autodiff.Tanh}
}

// NewReLU creates a ReLU activation module.
func NewReLU() *Activation {
	return &Activation{name: "relu", fn: autodiff.ReLU}
}

// NewSiLU creates a SiLU (Swish) activation module.
func NewSiLU() *Activation {
	return &Activation{name: "silu", fn: autodiff.SiLU}
}

// Name returns the activation name.
func (a *Activation) Name() string {
	return a.name
}

// Forward applies the activation to every input.
func (a *Activation) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		out[i] = a.fn(x)
	}
	return out
}

// Parameters returns nil (activations have no trainable parameters).
func (a *Activation) Parameters() []*Parameter {
	return nil
}
