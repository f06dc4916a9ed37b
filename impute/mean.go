package impute

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mean is the column-mean baseline: every missing entry becomes the
// arithmetic mean of its column's observed entries. It is the reference
// every model-based imputer is benchmarked against.
type Mean struct{}

// NewMean returns the baseline imputer.
func NewMean() *Mean { return &Mean{} }

// Name implements Imputer.
func (*Mean) Name() string { return "mean" }

// Impute implements Imputer.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix on invalid input.
//   - ErrEmptyColumn when a column has no observed entries: the mean is
//     undefined and silent NaN output is explicitly forbidden.
//
// Complexity: O(n·p) time, O(n·p) space for the completed copy.
func (*Mean) Impute(Xna *mat.Dense) (*mat.Dense, error) {
	if _, _, err := validateInput(Xna); err != nil {
		return nil, err
	}

	means, err := observedColumnMeans(Xna)
	if err != nil {
		return nil, err
	}

	out := mat.DenseCopyOf(Xna)
	r, c := out.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if math.IsNaN(out.At(i, j)) {
				out.Set(i, j, means[j])
			}
		}
	}
	return out, nil
}
