package bench

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
)

// RMSE computes sqrt( Σ_{mask} (Ximp - Xtrue)² / |mask| ): root-mean-squared
// reconstruction error restricted to the artificially removed entries.
//
// Contracts:
//   - Ximp, Xtrue and mask share one shape (ErrShapeMismatch otherwise).
//   - mask selects at least one entry (ErrEmptyMask otherwise — inside a
//     sweep this is a fatal assertion, since amputation guarantees a
//     non-empty mask).
//
// Note the asymmetry: the error is defined against ground truth on exactly
// the removed positions; swapping the roles of the matrices is only harmless
// because squaring discards the sign of each residual, not in general.
//
// Complexity: O(n·p).
func RMSE(Ximp, Xtrue *mat.Dense, mask *ampute.Mask) (float64, error) {
	if Ximp == nil || Xtrue == nil || mask == nil {
		return 0, ErrNilMatrix
	}
	ir, ic := Ximp.Dims()
	tr, tc := Xtrue.Dims()
	mr, mc := mask.Dims()
	if ir != tr || ic != tc || ir != mr || ic != mc {
		return 0, ErrShapeMismatch
	}

	sse, count := 0.0, 0
	var i, j int
	for i = 0; i < ir; i++ {
		for j = 0; j < ic; j++ {
			if !mask.At(i, j) {
				continue
			}
			d := Ximp.At(i, j) - Xtrue.At(i, j)
			sse += d * d
			count++
		}
	}
	if count == 0 {
		return 0, ErrEmptyMask
	}
	return math.Sqrt(sse / float64(count)), nil
}
