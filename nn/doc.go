// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: Sigmoid, Tanh, ReLU, SiLU
//   - Loss functions: MSELoss, MSELossNode
//   - Utilities: Sequential, Module interface, Parameter, Checkpoint
//   - Initialization: Uniform, Xavier, Constant
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    model := nn.NewXORNet(rng, 2)
//
//	    out := model.Forward(nn.Leaves([]float64{1, 0}))[0]
//	    _, seed := nn.MSELoss(out, 1)
//	    autodiff.Backward(out, seed)
//	}
package nn
