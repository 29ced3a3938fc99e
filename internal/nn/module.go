// Package nn implements scalar neural network modules on top of the autodiff engine.
//
// This package provides building blocks for small networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable leaf value
//   - Linear: Fully connected layer built from Mul/Add nodes
//   - Activations: Sigmoid, Tanh, ReLU, SiLU
//   - Loss functions: MSE
//   - Sequential: Container for stacking layers
//   - Checkpoint: Checksummed JSON snapshots of parameter values
//
// Every Forward call builds a fresh graph whose leaves are the current
// parameter values, so graphs can be discarded after each backward pass.
package nn

import "github.com/born-ml/scalargrad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build networks:
//
//	model := nn.NewSequential(
//	    nn.NewLinear("hidden", 2, 2, nn.Xavier(rng, 2, 2), nn.Constant(0)),
//	    nn.NewSigmoid(),
//	    nn.NewLinear("out", 2, 1, nn.Xavier(rng, 2, 1), nn.Constant(0)),
//	    nn.NewSigmoid(),
//	)
type Module interface {
	// Forward maps one input vector to one output vector, recording the
	// computation graph as it goes.
	Forward(inputs []*autodiff.Value) []*autodiff.Value

	// Parameters returns all trainable parameters of this module.
	//
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter
}

// Leaves wraps raw numbers into leaf values for use as module inputs.
func Leaves(xs []float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(x)
	}
	return out
}
