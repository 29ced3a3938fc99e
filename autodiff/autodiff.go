// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Values record the operations that produced them. Backward walks the
// recorded graph from an output to its leaves and accumulates exact
// gradients via the chain rule.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(1)
//	    w := autodiff.NewValue(0.5)
//	    b := autodiff.NewValue(0.1)
//
//	    h := autodiff.Sigmoid(autodiff.Add(autodiff.Mul(x, w), b))
//	    autodiff.Backward(h, 1.0)
//
//	    fmt.Println(h.Value(), w.Grad())
//	}
//
// Gradients accumulate across passes. Reset shared values with ZeroGrad or
// ZeroGradAll before each new Backward call.
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Value is a scalar node of the computation graph.
type Value = autodiff.Value

// Edge is a (parent, local derivative) pair recorded on a Value.
type Edge = autodiff.Edge

// Operation is the extension point for new differentiable operations.
type Operation = autodiff.Operation

// Strategy selects the backward traversal algorithm.
type Strategy = autodiff.Strategy

// Backward strategies.
const (
	Topological = autodiff.Topological
	PerPath     = autodiff.PerPath
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = autodiff.ErrUnknownStrategy

// NewValue creates a leaf value.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Apply records a custom operation on the given operands.
func Apply(op Operation, inputs ...*Value) *Value {
	return autodiff.Apply(op, inputs...)
}

// Add returns a + b.
func Add(a, b *Value) *Value { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Value) *Value { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Value) *Value { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Value) *Value { return autodiff.Div(a, b) }

// Neg returns -x.
func Neg(x *Value) *Value { return autodiff.Neg(x) }

// Sigmoid returns 1 / (1 + exp(-x)).
func Sigmoid(x *Value) *Value { return autodiff.Sigmoid(x) }

// Tanh returns tanh(x).
func Tanh(x *Value) *Value { return autodiff.Tanh(x) }

// ReLU returns max(0, x).
func ReLU(x *Value) *Value { return autodiff.ReLU(x) }

// Exp returns e^x.
func Exp(x *Value) *Value { return autodiff.Exp(x) }

// Log returns ln(x).
func Log(x *Value) *Value { return autodiff.Log(x) }

// Pow returns x^p for a constant p.
func Pow(x *Value, p float64) *Value { return autodiff.Pow(x, p) }

// Sqrt returns √x.
func Sqrt(x *Value) *Value { return autodiff.Sqrt(x) }

// Sin returns sin(x).
func Sin(x *Value) *Value { return autodiff.Sin(x) }

// Cos returns cos(x).
func Cos(x *Value) *Value { return autodiff.Cos(x) }

// SiLU returns x * σ(x).
func SiLU(x *Value) *Value { return autodiff.SiLU(x) }

// Backward propagates seed from v to all ancestors (topological strategy).
func Backward(v *Value, seed float64) {
	autodiff.Backward(v, seed)
}

// BackwardWith propagates seed from v using the given strategy.
func BackwardWith(v *Value, seed float64, strategy Strategy) {
	autodiff.BackwardWith(v, seed, strategy)
}

// Ancestors returns v and every reachable value in topological order.
func Ancestors(v *Value) []*Value {
	return autodiff.Ancestors(v)
}

// ZeroGradAll resets the gradient of v and every ancestor.
func ZeroGradAll(v *Value) {
	autodiff.ZeroGradAll(v)
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	return autodiff.ParseStrategy(name)
}
