package calc_test

import (
	"fmt"

	"github.com/bradybhalla/matrixcalc/calc"
)

// ExampleApply multiplies two matrices given as plain text blocks.
func ExampleApply() {
	out, err := calc.Apply(calc.Request{
		Op:       calc.OpMultiply,
		Operands: []string{"1 2\n3 4", "5 6\n7 8"},
	})
	if err != nil {
		fmt.Println("multiply failed:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// 19 22
	// 43 50
}

// ExampleApply_scale shows the 1×1-operand form: the unit matrix supplies
// the scalar and the other operand is scaled.
func ExampleApply_scale() {
	out, err := calc.Apply(calc.Request{
		Op:       calc.OpScale,
		Operands: []string{"2", "1 2\n3 4"},
	})
	if err != nil {
		fmt.Println("scale failed:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// 2 4
	// 6 8
}

// ExampleApply_insert builds a fresh zero matrix from a dimension spec.
func ExampleApply_insert() {
	out, err := calc.Apply(calc.Request{Op: calc.OpInsert, DimSpec: "2x3"})
	if err != nil {
		fmt.Println("insert failed:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// 0 0 0
	// 0 0 0
}
