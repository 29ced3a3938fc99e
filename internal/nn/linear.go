package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Linear implements a fully connected layer over scalar values.
//
// Computes y_j = Σ_i x_i * w_ji + b_j, recording one Mul per weight and
// one Add per term.
type Linear struct {
	inFeatures  int
	outFeatures int
	weights     [][]*Parameter // [out][in]
	biases      []*Parameter   // [out]
}

// NewLinear creates a new Linear layer.
//
// Weights and biases are drawn from initW and initB respectively. Parameters
// are named "<prefix>.w<out>_<in>" and "<prefix>.b<out>".
func NewLinear(prefix string, inFeatures, outFeatures int, initW, initB Initializer) *Linear {
	weights := make([][]*Parameter, outFeatures)
	biases := make([]*Parameter, outFeatures)
	for j := range outFeatures {
		weights[j] = make([]*Parameter, inFeatures)
		for i := range inFeatures {
			weights[j][i] = NewParameter(fmt.Sprintf("%s.w%d_%d", prefix, j, i), initW())
		}
		biases[j] = NewParameter(fmt.Sprintf("%s.b%d", prefix, j), initB())
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     weights,
		biases:      biases,
	}
}

// Forward computes the layer outputs.
//
// Panics if len(inputs) differs from the layer's input width.
func (l *Linear) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	if len(inputs) != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected %d inputs, got %d", l.inFeatures, len(inputs)))
	}

	out := make([]*autodiff.Value, l.outFeatures)
	for j := range l.outFeatures {
		var acc *autodiff.Value
		for i, x := range inputs {
			term := autodiff.Mul(x, l.weights[j][i].Value())
			if acc == nil {
				acc = term
			} else {
				acc = autodiff.Add(acc, term)
			}
		}
		if acc == nil {
			out[j] = l.biases[j].Value()
			continue
		}
		out[j] = autodiff.Add(acc, l.biases[j].Value())
	}

	return out
}

// Parameters returns weights (row-major) followed by biases.
func (l *Linear) Parameters() []*Parameter {
	params := make([]*Parameter, 0, l.outFeatures*(l.inFeatures+1))
	for _, row := range l.weights {
		params = append(params, row...)
	}
	return append(params, l.biases...)
}

// Weight returns the parameter connecting input i to output j.
func (l *Linear) Weight(j, i int) *Parameter {
	return l.weights[j][i]
}

// Bias returns the bias parameter of output j.
func (l *Linear) Bias(j int) *Parameter {
	return l.biases[j]
}

// InFeatures returns the input width.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
