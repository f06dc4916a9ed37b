package ampute_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
)

// ExampleParseMechanism shows the case-insensitive acronym parsing used by
// configuration surfaces.
func ExampleParseMechanism() {
	m, err := ampute.ParseMechanism("mar")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output: MAR
}

// ExampleAmputate demonstrates the basic contract: same shape, NaN markers
// counted by the mask, original left untouched.
func ExampleAmputate() {
	X := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})

	Xna, mask, err := ampute.Amputate(X, ampute.MCAR, 0.3, &ampute.Options{Seed: 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, c := Xna.Dims()
	fmt.Printf("shape: %d×%d\n", r, c)
	fmt.Printf("density matches count: %v\n", mask.Density() == float64(mask.Count())/float64(r*c))
	fmt.Printf("input untouched: %v\n", X.At(0, 0) == 1)
	// Output:
	// shape: 4×3
	// density matches count: true
	// input untouched: true
}
