package nn

import "math/rand"

// NewXORNet builds the 2 → hidden → 1 sigmoid network used for XOR.
//
// All weights and biases are drawn from U[0, 1), matching the classic
// setup this network is usually trained from.
func NewXORNet(rng *rand.Rand, hidden int) *Sequential {
	uniform := Uniform(rng, 0, 1)
	return NewSequential(
		NewLinear("hidden", 2, hidden, uniform, uniform),
		NewSigmoid(),
		NewLinear("out", hidden, 1, uniform, uniform),
		NewSigmoid(),
	)
}
