package optim

import "github.com/born-ml/scalargrad/internal/nn"

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.5

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	params []*nn.Parameter
	lr     float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.5)
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step performs a single optimization step on every parameter.
//
// Each update replaces the parameter's leaf, which also clears its gradient.
func (s *SGD) Step() {
	for _, param := range s.params {
		param.Update(-s.lr * param.Grad())
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Params returns the parameters being optimized.
func (s *SGD) Params() []*nn.Parameter {
	return s.params
}
