package codec_test

import (
	"fmt"

	"github.com/bradybhalla/matrixcalc/codec"
	"github.com/bradybhalla/matrixcalc/matrix"
)

// ExampleParse shows text → matrix conversion with strict validation.
func ExampleParse() {
	m, err := codec.Parse("1 2\n3 4")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(m.Rows(), "rows,", m.Cols(), "cols")
	// Output:
	// 2 rows, 2 cols
}

// ExampleFormat shows canonical serialization: columns are right-aligned and
// integral values print without decimal points.
func ExampleFormat() {
	m, _ := matrix.FromRows([][]float64{{1, 10}, {100, 2.5}})

	out, err := codec.Format(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	//   1  10
	// 100 2.5
}

// ExampleParseDimensionShorthand recognizes "RxC" insertion tokens.
func ExampleParseDimensionShorthand() {
	rows, cols, err := codec.ParseDimensionShorthand("2x3")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d rows, %d cols\n", rows, cols)
	// Output:
	// 2 rows, 3 cols
}
