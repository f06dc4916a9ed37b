package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/bench"
)

// TestRMSE_ExactFormula verifies the definition on hand-computed numbers:
// masked residuals 3 and 4 give sqrt((9+16)/2).
func TestRMSE_ExactFormula(t *testing.T) {
	Xtrue := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	Ximp := mat.NewDense(2, 2, []float64{4, 2, 3, 8}) // +3 at (0,0), +4 at (1,1)

	mask := ampute.NewMask(2, 2)
	mask.Set(0, 0, true)
	mask.Set(1, 1, true)

	got, err := bench.RMSE(Ximp, Xtrue, mask)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), got, 1e-12)
}

// TestRMSE_IgnoresUnmasked: residuals outside the mask contribute nothing.
func TestRMSE_IgnoresUnmasked(t *testing.T) {
	Xtrue := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	Ximp := mat.NewDense(2, 2, []float64{1, 99, 3, 4}) // large error off-mask

	mask := ampute.NewMask(2, 2)
	mask.Set(0, 0, true)

	got, err := bench.RMSE(Ximp, Xtrue, mask)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "off-mask differences must not count")
}

// TestRMSE_ZeroIffEqualOnMask: zero exactly when the matrices agree on every
// masked position.
func TestRMSE_ZeroIffEqualOnMask(t *testing.T) {
	Xtrue := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	mask := ampute.NewMask(2, 2)
	mask.Set(0, 1, true)
	mask.Set(1, 0, true)

	same, err := bench.RMSE(mat.DenseCopyOf(Xtrue), Xtrue, mask)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same)

	Ximp := mat.DenseCopyOf(Xtrue)
	Ximp.Set(1, 0, 3.5)
	diff, err := bench.RMSE(Ximp, Xtrue, mask)
	require.NoError(t, err)
	assert.Positive(t, diff)
}

// TestRMSE_Errors covers nil inputs, shape mismatch and the empty mask.
func TestRMSE_Errors(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	mask := ampute.NewMask(2, 2)

	_, err := bench.RMSE(nil, X, mask)
	assert.ErrorIs(t, err, bench.ErrNilMatrix)

	_, err = bench.RMSE(X, mat.NewDense(2, 3, nil), mask)
	assert.ErrorIs(t, err, bench.ErrShapeMismatch)

	_, err = bench.RMSE(X, mat.DenseCopyOf(X), mask)
	assert.ErrorIs(t, err, bench.ErrEmptyMask, "an all-false mask has no entries to score")
}
