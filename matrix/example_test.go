package matrix_test

import (
	"fmt"

	"github.com/bradybhalla/matrixcalc/matrix"
)

// ExampleMul demonstrates the classic 2×2 matrix product.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})

	prod, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(prod)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleRREF reduces a small linear system to its canonical form:
// x + y = 3, 2x − y = 0 solves to x = 1, y = 2.
func ExampleRREF() {
	m, _ := matrix.FromRows([][]float64{{1, 1, 3}, {2, -1, 0}})

	r, err := matrix.RREF(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(r)
	// Output:
	// [1, 0, 1]
	// [0, 1, 2]
}

// ExampleInverse inverts a unipotent 2×2 matrix; singular inputs fail with
// matrix.ErrSingular instead of producing garbage.
func ExampleInverse() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {0, 1}})

	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(inv)
	// Output:
	// [1, -2]
	// [0, 1]
}
