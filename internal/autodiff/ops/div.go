package ops

// Div represents division: output = a / b.
//
// Local derivatives: d/da = 1/b, d/db = -a/b².
// Division by zero yields ±Inf or NaN per IEEE-754.
type Div struct{}

// Name returns "div".
func (Div) Name() string { return "div" }

// Arity returns 2.
func (Div) Arity() int { return 2 }

// Forward computes a / b.
func (Div) Forward(in []float64) (float64, []float64) {
	a, b := in[0], in[1]
	return a / b, []float64{1 / b, -a / (b * b)}
}
