package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/reichweite/matrix"
)

// ExampleNewDiag builds the distribution matrix diag(W).
func ExampleNewDiag() {
	D, _ := matrix.NewDiag([]float64{0.25, 0.75})
	fmt.Print(D)
	// Output:
	// [0.25, 0]
	// [0, 0.75]
}

// ExampleValidateRowStochastic checks a two-component transition matrix.
func ExampleValidateRowStochastic() {
	P, _ := matrix.NewFromRows([][]float64{{0.5, 0.5}, {0.2, 0.7}})
	fmt.Println(matrix.ValidateRowStochastic(P))
	// Output:
	// ValidateRowStochastic: row 1: ValidateDistribution: matrix: not stochastic within eps
}
