// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and initial value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// Leaves wraps raw inputs as leaf values.
func Leaves(xs []float64) []*autodiff.Value {
	return nn.Leaves(xs)
}

// Layers

// Linear represents a fully connected layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLinear("hidden", 2, 2, nn.Xavier(rng, 2, 2), nn.Constant(0))
func NewLinear(prefix string, inFeatures, outFeatures int, initW, initB Initializer) *Linear {
	return nn.NewLinear(prefix, inFeatures, outFeatures, initW, initB)
}

// Activation applies a unary function element-wise.
type Activation = nn.Activation

// NewSigmoid creates a sigmoid activation.
func NewSigmoid() *Activation { return nn.NewSigmoid() }

// NewTanh creates a tanh activation.
func NewTanh() *Activation { return nn.NewTanh() }

// NewReLU creates a ReLU activation.
func NewReLU() *Activation { return nn.NewReLU() }

// NewSiLU creates a SiLU activation.
func NewSiLU() *Activation { return nn.NewSiLU() }

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewXORNet builds the 2 → hidden → 1 sigmoid network.
func NewXORNet(rng *rand.Rand, hidden int) *Sequential {
	return nn.NewXORNet(rng, hidden)
}

// Initialization

// Initializer produces initial parameter values.
type Initializer = nn.Initializer

// Uniform draws from [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) Initializer { return nn.Uniform(rng, lo, hi) }

// Xavier draws from the Glorot uniform distribution.
func Xavier(rng *rand.Rand, fanIn, fanOut int) Initializer { return nn.Xavier(rng, fanIn, fanOut) }

// Constant always returns c.
func Constant(c float64) Initializer { return nn.Constant(c) }

// Loss functions

// MSELoss returns 0.5*(p-y)² and the seed gradient p-y.
func MSELoss(pred *autodiff.Value, target float64) (loss, seed float64) {
	return nn.MSELoss(pred, target)
}

// MSELossNode builds 0.5*(p-y)² as a graph node.
func MSELossNode(pred *autodiff.Value, target float64) *autodiff.Value {
	return nn.MSELossNode(pred, target)
}
