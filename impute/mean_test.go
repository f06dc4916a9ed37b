package impute_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/impute"
)

// TestMean_SimpleColumn: the canonical contract case — a column holding
// [1, missing, 3] must impute exactly 2.
func TestMean_SimpleColumn(t *testing.T) {
	Xna := mat.NewDense(3, 1, []float64{1, math.NaN(), 3})

	got, err := impute.NewMean().Impute(Xna)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.At(1, 0))
	assert.Equal(t, 1.0, got.At(0, 0))
	assert.Equal(t, 3.0, got.At(2, 0))
}

// TestMean_PerColumnMeans: each column uses its own observed mean.
func TestMean_PerColumnMeans(t *testing.T) {
	Xna := mat.NewDense(4, 2, []float64{
		2, 10,
		math.NaN(), 20,
		4, math.NaN(),
		6, 30,
	})

	got, err := impute.NewMean().Impute(Xna)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.At(1, 0), "column 0 mean of {2,4,6}")
	assert.Equal(t, 20.0, got.At(2, 1), "column 1 mean of {10,20,30}")
}

// TestMean_EmptyColumn: a column with no observed values is an error, not a
// silent NaN.
func TestMean_EmptyColumn(t *testing.T) {
	Xna := mat.NewDense(2, 2, []float64{
		1, math.NaN(),
		2, math.NaN(),
	})
	_, err := impute.NewMean().Impute(Xna)
	assert.ErrorIs(t, err, impute.ErrEmptyColumn)
}

// TestMean_Name pins the benchmark row label.
func TestMean_Name(t *testing.T) {
	assert.Equal(t, "mean", impute.NewMean().Name())
}
