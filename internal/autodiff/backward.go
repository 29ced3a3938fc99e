package autodiff

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how Backward walks the graph.
//
// Both strategies produce the same gradients (up to floating-point summation
// order); they differ only in how much work shared subgraphs cost.
type Strategy int

const (
	// Topological orders the reachable subgraph once and visits every node
	// exactly once in reverse order. Cost is linear in the number of edges.
	Topological Strategy = iota

	// PerPath pushes the seed down every edge independently, so a node reached
	// by k distinct paths is visited k times. Cost is linear in the number of
	// paths, which grows exponentially on heavily shared graphs.
	PerPath
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("autodiff: unknown backward strategy")

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Topological:
		return "topological"
	case PerPath:
		return "perpath"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a name ("topological", "perpath") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "topological", "topo":
		return Topological, nil
	case "perpath", "per-path", "recursive":
		return PerPath, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Backward propagates seed from v to every ancestor using the Topological strategy.
//
// Each reachable node's gradient is incremented by seed times the sum, over
// all paths from v to that node, of the product of local derivatives along
// the path. Use seed 1.0 when v itself is the scalar objective.
//
// Gradients accumulate; reset them with ZeroGrad/ZeroGradAll between passes.
func Backward(v *Value, seed float64) {
	BackwardWith(v, seed, Topological)
}

// Backward is shorthand for Backward(v, 1.0).
func (v *Value) Backward() {
	Backward(v, 1.0)
}

// BackwardWith propagates seed from v to every ancestor using the given strategy.
func BackwardWith(v *Value, seed float64, strategy Strategy) {
	switch strategy {
	case PerPath:
		backwardPerPath(v, seed)
	default:
		backwardTopological(v, seed)
	}
}

// backwardTopological runs a single reverse pass over the topological order.
//
// Upstream contributions of this pass are collected in pending rather than read
// back from grad, because grad may still hold values from earlier passes.
// A node's pending total is complete once all its consumers have been processed,
// which the reverse topological order guarantees.
func backwardTopological(v *Value, seed float64) {
	order := Ancestors(v)
	pending := make(map[*Value]float64, len(order))
	pending[v] = seed

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		g := pending[node]
		node.grad += g
		for j, parent := range node.parents {
			pending[parent] += g * node.localGrads[j]
		}
	}
}

// pathFrame is one pending contribution in the per-path walk.
type pathFrame struct {
	node *Value
	seed float64
}

// backwardPerPath pushes the seed along every path without memoization.
//
// An explicit stack replaces recursion so graph depth is not bounded by the
// goroutine stack. Edges are pushed in reverse so they are visited in
// operand order, matching a depth-first recursive walk.
func backwardPerPath(v *Value, seed float64) {
	stack := []pathFrame{{node: v, seed: seed}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := frame.node
		node.grad += frame.seed
		for j := len(node.parents) - 1; j >= 0; j-- {
			stack = append(stack, pathFrame{
				node: node.parents[j],
				seed: frame.seed * node.localGrads[j],
			})
		}
	}
}

// Ancestors returns v and every value reachable from it through edges, in
// topological order: each value appears after all of its parents, and v is last.
//
// Each value appears exactly once regardless of how many paths reach it.
func Ancestors(v *Value) []*Value {
	type dfsItem struct {
		node     *Value
		expanded bool
	}

	var order []*Value
	visited := make(map[*Value]bool)
	stack := []dfsItem{{node: v}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.expanded {
			order = append(order, item.node)
			continue
		}
		if visited[item.node] {
			continue
		}
		visited[item.node] = true

		// Emit after all parents have been emitted.
		stack = append(stack, dfsItem{node: item.node, expanded: true})
		for j := len(item.node.parents) - 1; j >= 0; j-- {
			parent := item.node.parents[j]
			if !visited[parent] {
				stack = append(stack, dfsItem{node: parent})
			}
		}
	}

	return order
}

// ZeroGradAll resets the gradient of v and every ancestor.
func ZeroGradAll(v *Value) {
	for _, node := range Ancestors(v) {
		node.grad = 0
	}
}
