// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	    "github.com/born-ml/scalargrad/optim"
//	)
//
//	func main() {
//	    model := nn.NewXORNet(rand.New(rand.NewSource(1)), 2)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//
//	    for epoch := range 10000 {
//	        for _, s := range samples {
//	            optimizer.ZeroGrad()
//	            out := model.Forward(nn.Leaves(s.Inputs))[0]
//	            _, seed := nn.MSELoss(out, s.Target)
//	            autodiff.Backward(out, seed)
//	            optimizer.Step()
//	        }
//	    }
//	}
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    for _, sample := range samples {
//	        // 1. Zero gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Forward pass
//	        out := model.Forward(nn.Leaves(sample.Inputs))[0]
//
//	        // 3. Backward pass, seeded with dLoss/dOut
//	        _, seed := nn.MSELoss(out, sample.Target)
//	        autodiff.Backward(out, seed)
//
//	        // 4. Update parameters
//	        optimizer.Step()
//	    }
//	}
package optim
