package bench_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/bench"
)

// ExampleRMSE scores a hand-imputed matrix against ground truth on exactly
// the removed positions.
func ExampleRMSE() {
	Xtrue := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	Ximp := mat.NewDense(2, 2, []float64{4, 2, 3, 8})

	mask := ampute.NewMask(2, 2)
	mask.Set(0, 0, true) // residual 3
	mask.Set(1, 1, true) // residual 4

	score, err := bench.RMSE(Ximp, Xtrue, mask)
	if err != nil {
		fmt.Println("rmse:", err)
		return
	}
	fmt.Printf("%.4f\n", score)
	// Output:
	// 3.5355
}

// ExampleCell_String shows the header form used in report tables.
func ExampleCell_String() {
	c := bench.Cell{Fraction: 0.3, Mechanism: ampute.MNAR}
	fmt.Println(c)
	// Output:
	// 30%/MNAR
}
