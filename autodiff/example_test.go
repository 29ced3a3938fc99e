// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/born-ml/scalargrad/autodiff"
)

func Example() {
	x1, x2 := autodiff.NewValue(1), autodiff.NewValue(0)
	w1, w2 := autodiff.NewValue(0.5), autodiff.NewValue(-0.3)
	b := autodiff.NewValue(0.1)

	h := autodiff.Sigmoid(autodiff.Add(autodiff.Add(autodiff.Mul(x1, w1), autodiff.Mul(x2, w2)), b))
	autodiff.Backward(h, 1.0)

	fmt.Printf("h=%.4f dh/dw1=%.4f dh/dw2=%.4f\n", h.Value(), w1.Grad(), w2.Grad())
	// Output: h=0.6457 dh/dw1=0.2288 dh/dw2=0.0000
}

func ExampleZeroGradAll() {
	x := autodiff.NewValue(3)
	y := autodiff.Mul(x, x)

	y.Backward()
	y.Backward()
	fmt.Println(x.Grad())

	autodiff.ZeroGradAll(y)
	y.Backward()
	fmt.Println(x.Grad())
	// Output:
	// 12
	// 6
}
