// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from input values
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewSequential(
//	    nn.NewLinear("hidden", 2, 2, nn.Uniform(rng, 0, 1), nn.Uniform(rng, 0, 1)),
//	    nn.NewSigmoid(),
//	    nn.NewLinear("out", 2, 1, nn.Uniform(rng, 0, 1), nn.Uniform(rng, 0, 1)),
//	    nn.NewSigmoid(),
//	)
type Module = nn.Module

// Checkpoint is a snapshot of model parameters plus training metadata.
type Checkpoint = nn.Checkpoint

// Checkpoint errors.
var (
	ErrChecksumMismatch   = nn.ErrChecksumMismatch
	ErrUnsupportedVersion = nn.ErrUnsupportedVersion
	ErrMissingParameter   = nn.ErrMissingParameter
	ErrUnknownParameter   = nn.ErrUnknownParameter
)

// NewCheckpoint captures the current parameter values of model.
func NewCheckpoint(model Module, epoch int, loss float64) *Checkpoint {
	return nn.NewCheckpoint(model, epoch, loss)
}

// Save writes the module's parameters to a checkpoint file.
//
// Example:
//
//	err := nn.Save(model, "xor.json", epoch, loss)
func Save(module Module, path string, epoch int, loss float64) error {
	return nn.NewCheckpoint(module, epoch, loss).Save(path)
}

// Load reads a checkpoint file and applies it to module.
//
// The module is left unchanged if the file is corrupted or the parameter
// names do not match.
//
// Example:
//
//	ckpt, err := nn.Load("xor.json", model)
func Load(path string, module Module) (*Checkpoint, error) {
	return nn.LoadCheckpoint(path, module)
}
