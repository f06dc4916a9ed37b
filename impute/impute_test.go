package impute_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/dataset"
	"github.com/katalvlaran/imputelab/impute"
)

// fastImputers builds one instance of every method with budgets small enough
// for unit tests, keyed by name for targeted assertions.
func fastImputers() []impute.Imputer {
	return []impute.Imputer{
		impute.NewMean(),
		impute.NewSoftImpute(&impute.SoftImputeOptions{Lambdas: []float64{0.5}, Tol: 1e-3, MaxIter: 60, Seed: 1}),
		impute.NewMICE(&impute.MICEOptions{M: 2, Sweeps: 4, Seed: 1}),
		impute.NewForest(&impute.ForestOptions{Trees: 15, MaxDepth: 6, MinLeaf: 5, MaxIter: 2, Seed: 1}),
		impute.NewIterPCA(&impute.IterPCAOptions{Components: 2, Tol: 1e-3, MaxIter: 100, Seed: 1}),
	}
}

// correlatedTable draws a reproducible correlated dataset: enough structure
// for every model-based method to have something to learn.
func correlatedTable(t *testing.T, n, p int, rho float64) *mat.Dense {
	t.Helper()
	opts := dataset.DefaultSyntheticOptions()
	opts.Correlation = rho
	opts.Seed = 13
	ds, err := dataset.SyntheticNormal(n, p, &opts)
	require.NoError(t, err)
	return ds.Matrix()
}

// amputed produces a NaN-marked MCAR copy plus its mask.
func amputed(t *testing.T, X *mat.Dense, fraction float64, seed int64) (*mat.Dense, *ampute.Mask) {
	t.Helper()
	Xna, mask, err := ampute.Amputate(X, ampute.MCAR, fraction, &ampute.Options{Seed: seed})
	require.NoError(t, err)
	return Xna, mask
}

// maskedRMSE scores a completion over the removed entries only.
func maskedRMSE(Ximp, Xtrue *mat.Dense, mask *ampute.Mask) float64 {
	r, c := Xtrue.Dims()
	sse, n := 0.0, 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if mask.At(i, j) {
				d := Ximp.At(i, j) - Xtrue.At(i, j)
				sse += d * d
				n++
			}
		}
	}
	return math.Sqrt(sse / float64(n))
}

// equalWithNaN compares matrices treating NaN==NaN as equal.
func equalWithNaN(a, b *mat.Dense) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			av, bv := a.At(i, j), b.At(i, j)
			if math.IsNaN(av) && math.IsNaN(bv) {
				continue
			}
			if av != bv {
				return false
			}
		}
	}
	return true
}

// TestImputers_IdempotentOnComplete: a fully observed input round-trips
// unchanged through every method.
func TestImputers_IdempotentOnComplete(t *testing.T) {
	X := correlatedTable(t, 40, 5, 0.5)
	for _, imp := range fastImputers() {
		got, err := imp.Impute(X)
		require.NoError(t, err, imp.Name())
		assert.True(t, mat.Equal(X, got), "%s must return a complete input unchanged", imp.Name())
	}
}

// TestImputers_PreservesObserved: observed entries survive bit-identically
// and no NaN remains in any completion.
func TestImputers_PreservesObserved(t *testing.T) {
	X := correlatedTable(t, 80, 5, 0.5)
	Xna, _ := amputed(t, X, 0.3, 4)

	r, c := X.Dims()
	for _, imp := range fastImputers() {
		got, err := imp.Impute(Xna)
		require.NoError(t, err, imp.Name())

		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := Xna.At(i, j)
				if math.IsNaN(v) {
					assert.False(t, math.IsNaN(got.At(i, j)),
						"%s left NaN at (%d,%d)", imp.Name(), i, j)
					continue
				}
				assert.Equal(t, v, got.At(i, j),
					"%s changed observed (%d,%d)", imp.Name(), i, j)
			}
		}
	}
}

// TestImputers_InputUntouched: Impute never writes to its argument.
func TestImputers_InputUntouched(t *testing.T) {
	X := correlatedTable(t, 60, 4, 0.5)
	Xna, _ := amputed(t, X, 0.3, 9)
	snapshot := mat.DenseCopyOf(Xna)

	for _, imp := range fastImputers() {
		_, err := imp.Impute(Xna)
		require.NoError(t, err, imp.Name())
		assert.True(t, equalWithNaN(snapshot, Xna), "%s mutated its input", imp.Name())
	}
}

// TestImputers_NilAndEmptyColumn: the shared failure taxonomy.
func TestImputers_NilAndEmptyColumn(t *testing.T) {
	allMissing := mat.NewDense(3, 2, []float64{
		1, math.NaN(),
		2, math.NaN(),
		3, math.NaN(),
	})
	for _, imp := range fastImputers() {
		_, err := imp.Impute(nil)
		assert.ErrorIs(t, err, impute.ErrNilMatrix, "%s on nil", imp.Name())

		_, err = imp.Impute(allMissing)
		assert.ErrorIs(t, err, impute.ErrEmptyColumn, "%s on an all-missing column", imp.Name())
	}
}
