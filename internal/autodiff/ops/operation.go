// Package ops defines the scalar operations recorded by the autodiff engine.
//
// Each type implements autodiff.Operation structurally:
//   - Name: operation identifier recorded on the result node
//   - Arity: number of operands consumed
//   - Forward: result value plus the local derivative for each operand
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Sub: a - b (d/da = 1, d/db = -1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Div: a / b (d/da = 1/b, d/db = -a/b²)
//   - Neg: -x (d/dx = -1)
//   - Sigmoid: 1 / (1 + exp(-x)) (d/dx = s * (1 - s))
//   - Tanh: tanh(x) (d/dx = 1 - t²)
//   - ReLU: max(0, x) (d/dx = 1 if x > 0, else 0)
//   - Exp: e^x (d/dx = e^x)
//   - Log: ln(x) (d/dx = 1/x)
//   - Pow: x^p for a constant p (d/dx = p * x^(p-1))
//   - Sqrt: √x (d/dx = 1 / (2√x))
//   - Sin: sin(x) (d/dx = cos(x))
//   - Cos: cos(x) (d/dx = -sin(x))
//   - SiLU: x * σ(x) (d/dx = σ + x * σ * (1 - σ))
//
// None of the operations guard against overflow or NaN; IEEE-754 semantics apply.
package ops
