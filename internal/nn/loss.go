package nn

import "github.com/born-ml/scalargrad/internal/autodiff"

// MSELoss computes the squared error of a single prediction.
//
// Returns loss = 0.5 * (p - y)² as a plain number together with the seed
// gradient dLoss/dp = p - y. Seeding Backward(pred, seed) with it gives the
// same parameter gradients as differentiating a loss node, without extending
// the graph.
func MSELoss(pred *autodiff.Value, target float64) (loss, seed float64) {
	diff := pred.Value() - target
	return 0.5 * diff * diff, diff
}

// MSELossNode builds 0.5 * (p - y)² as a graph node.
//
// Use Backward(loss, 1.0) on the result.
func MSELossNode(pred *autodiff.Value, target float64) *autodiff.Value {
	diff := autodiff.Sub(pred, autodiff.NewValue(target))
	return autodiff.Mul(autodiff.NewValue(0.5), autodiff.Mul(diff, diff))
}
