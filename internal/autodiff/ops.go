package autodiff

import "github.com/born-ml/scalargrad/internal/autodiff/ops"

// Add returns a + b with edges [(a, 1), (b, 1)].
func Add(a, b *Value) *Value {
	return Apply(ops.Add{}, a, b)
}

// Sub returns a - b with edges [(a, 1), (b, -1)].
func Sub(a, b *Value) *Value {
	return Apply(ops.Sub{}, a, b)
}

// Mul returns a * b with edges [(a, b), (b, a)] captured at construction time.
func Mul(a, b *Value) *Value {
	return Apply(ops.Mul{}, a, b)
}

// Div returns a / b.
func Div(a, b *Value) *Value {
	return Apply(ops.Div{}, a, b)
}

// Neg returns -x.
func Neg(x *Value) *Value {
	return Apply(ops.Neg{}, x)
}

// Sigmoid returns σ(x) = 1 / (1 + exp(-x)) with edge (x, σ(x) * (1 - σ(x))).
func Sigmoid(x *Value) *Value {
	return Apply(ops.Sigmoid{}, x)
}

// Tanh returns tanh(x).
func Tanh(x *Value) *Value {
	return Apply(ops.Tanh{}, x)
}

// ReLU returns max(0, x).
func ReLU(x *Value) *Value {
	return Apply(ops.ReLU{}, x)
}

// Exp returns e^x.
func Exp(x *Value) *Value {
	return Apply(ops.Exp{}, x)
}

// Log returns ln(x).
func Log(x *Value) *Value {
	return Apply(ops.Log{}, x)
}

// Pow returns x^p for a constant exponent p.
func Pow(x *Value, p float64) *Value {
	return Apply(ops.Pow{P: p}, x)
}

// Sqrt returns √x.
func Sqrt(x *Value) *Value {
	return Apply(ops.Sqrt{}, x)
}

// Sin returns sin(x).
func Sin(x *Value) *Value {
	return Apply(ops.Sin{}, x)
}

// Cos returns cos(x).
func Cos(x *Value) *Value {
	return Apply(ops.Cos{}, x)
}

// SiLU returns x * σ(x).
func SiLU(x *Value) *Value {
	return Apply(ops.SiLU{}, x)
}

// Add is method sugar for Add(v, other).
func (v *Value) Add(other *Value) *Value {
	return Add(v, other)
}

// Sub is method sugar for Sub(v, other).
func (v *Value) Sub(other *Value) *Value {
	return Sub(v, other)
}

// Mul is method sugar for Mul(v, other).
func (v *Value) Mul(other *Value) *Value {
	return Mul(v, other)
}

// Sigmoid is method sugar for Sigmoid(v).
func (v *Value) Sigmoid() *Value {
	return Sigmoid(v)
}
