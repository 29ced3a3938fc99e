// Package optim implements parameter update rules for training.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient descent
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//
//	for _, sample := range data {
//	    optimizer.ZeroGrad()
//	    out := model.Forward(nn.Leaves(sample.Inputs))[0]
//	    _, seed := nn.MSELoss(out, sample.Target)
//	    autodiff.Backward(out, seed)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Gradients are read from the parameters themselves, so Step must be called
// after Backward and before the next ZeroGrad.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
