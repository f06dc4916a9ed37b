package ampute_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/dataset"
)

// testMatrix draws a reproducible 200×10 correlated table so rank-based
// mechanisms have real value structure to condition on.
func testMatrix(t *testing.T) *mat.Dense {
	t.Helper()
	opts := dataset.DefaultSyntheticOptions()
	opts.Seed = 7
	ds, err := dataset.SyntheticNormal(200, 10, &opts)
	require.NoError(t, err)
	return ds.Matrix()
}

// TestAmputate_Validation exercises every fast-fail input check.
func TestAmputate_Validation(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	_, _, err := ampute.Amputate(nil, ampute.MCAR, 0.3, nil)
	assert.ErrorIs(t, err, ampute.ErrNilMatrix, "nil matrix must error")

	_, _, err = ampute.Amputate(X, ampute.MCAR, 0, nil)
	assert.ErrorIs(t, err, ampute.ErrBadFraction, "fraction 0 must error")

	_, _, err = ampute.Amputate(X, ampute.MCAR, 1, nil)
	assert.ErrorIs(t, err, ampute.ErrBadFraction, "fraction 1 must error")

	_, _, err = ampute.Amputate(X, ampute.Mechanism(42), 0.3, nil)
	assert.ErrorIs(t, err, ampute.ErrUnknownMechanism, "out-of-enum mechanism must error")

	single := mat.NewDense(3, 1, []float64{1, 2, 3})
	_, _, err = ampute.Amputate(single, ampute.MAR, 0.3, nil)
	assert.ErrorIs(t, err, ampute.ErrTooFewColumns, "MAR on one column must error")
}

// TestAmputate_Determinism: the same seed reproduces the identical mask and
// a different seed changes it.
func TestAmputate_Determinism(t *testing.T) {
	X := testMatrix(t)
	opts := ampute.Options{Seed: 99}

	_, m1, err := ampute.Amputate(X, ampute.MCAR, 0.3, &opts)
	require.NoError(t, err)
	_, m2, err := ampute.Amputate(X, ampute.MCAR, 0.3, &opts)
	require.NoError(t, err)

	r, c := m1.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, m1.At(i, j), m2.At(i, j), "mask cell (%d,%d)", i, j)
		}
	}

	_, m3, err := ampute.Amputate(X, ampute.MCAR, 0.3, &ampute.Options{Seed: 100})
	require.NoError(t, err)
	differs := false
	for i := 0; i < r && !differs; i++ {
		for j := 0; j < c; j++ {
			if m1.At(i, j) != m3.At(i, j) {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "a different seed must produce a different mask")
}

// TestAmputate_DensityBand: the realized mask density stays within ±20%
// relative of the target fraction for every mechanism and fraction.
func TestAmputate_DensityBand(t *testing.T) {
	X := testMatrix(t)
	fractions := []float64{0.2, 0.5, 0.7}

	for _, mech := range ampute.Mechanisms() {
		for _, f := range fractions {
			_, mask, err := ampute.Amputate(X, mech, f, &ampute.Options{Seed: 3})
			require.NoError(t, err, "%s at %g", mech, f)

			density := mask.Density()
			assert.InDelta(t, f, density, 0.2*f, "%s at %g realized %g", mech, f, density)
		}
	}
}

// TestAmputate_ObservedPreserved: unmasked entries are bit-identical to the
// input and masked entries are NaN.
func TestAmputate_ObservedPreserved(t *testing.T) {
	X := testMatrix(t)
	Xna, mask, err := ampute.Amputate(X, ampute.MNAR, 0.4, &ampute.Options{Seed: 11})
	require.NoError(t, err)

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if mask.At(i, j) {
				assert.True(t, math.IsNaN(Xna.At(i, j)), "masked (%d,%d) must be NaN", i, j)
			} else {
				assert.Equal(t, X.At(i, j), Xna.At(i, j), "observed (%d,%d) must be untouched", i, j)
			}
		}
	}
}

// TestAmputate_InputUntouched: the source matrix itself is never mutated.
func TestAmputate_InputUntouched(t *testing.T) {
	X := testMatrix(t)
	snapshot := mat.DenseCopyOf(X)

	_, _, err := ampute.Amputate(X, ampute.MCAR, 0.5, nil)
	require.NoError(t, err)
	assert.True(t, mat.Equal(snapshot, X), "Amputate must not write to its input")
}

// TestAmputate_ColumnGuard: even tiny matrices at high fractions keep at
// least one observed value per column, across many seeds.
func TestAmputate_ColumnGuard(t *testing.T) {
	X := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	for seed := int64(1); seed <= 40; seed++ {
		for _, mech := range ampute.Mechanisms() {
			_, mask, err := ampute.Amputate(X, mech, 0.9, &ampute.Options{Seed: seed})
			require.NoError(t, err)

			r, c := mask.Dims()
			for j := 0; j < c; j++ {
				observed := 0
				for i := 0; i < r; i++ {
					if !mask.At(i, j) {
						observed++
					}
				}
				assert.GreaterOrEqual(t, observed, 1, "%s seed %d column %d", mech, seed, j)
			}
		}
	}
}

// TestAmputate_MARDriverFullyObserved: the MAR driver column never loses an
// entry, which is what makes the mechanism "at random" given observed data.
func TestAmputate_MARDriverFullyObserved(t *testing.T) {
	X := testMatrix(t)
	for seed := int64(1); seed <= 10; seed++ {
		_, mask, err := ampute.Amputate(X, ampute.MAR, 0.6, &ampute.Options{Seed: seed})
		require.NoError(t, err)

		r, _ := mask.Dims()
		for i := 0; i < r; i++ {
			assert.False(t, mask.At(i, 0), "driver entry (%d,0) must stay observed", i)
		}
	}
}

// TestAmputate_MNARTiltsHigh: under MNAR, the mean of the removed values
// must exceed the mean of the kept values — missingness follows the value.
func TestAmputate_MNARTiltsHigh(t *testing.T) {
	X := testMatrix(t)
	_, mask, err := ampute.Amputate(X, ampute.MNAR, 0.4, &ampute.Options{Seed: 21})
	require.NoError(t, err)

	r, c := X.Dims()
	removedSum, removedN, keptSum, keptN := 0.0, 0, 0.0, 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if mask.At(i, j) {
				removedSum += X.At(i, j)
				removedN++
			} else {
				keptSum += X.At(i, j)
				keptN++
			}
		}
	}
	require.Positive(t, removedN)
	require.Positive(t, keptN)
	assert.Greater(t, removedSum/float64(removedN), keptSum/float64(keptN),
		"MNAR must remove larger values more often")
}

// TestMechanism_ParseAndString round-trips the acronyms.
func TestMechanism_ParseAndString(t *testing.T) {
	for _, mech := range ampute.Mechanisms() {
		parsed, err := ampute.ParseMechanism(mech.String())
		require.NoError(t, err)
		assert.Equal(t, mech, parsed)
	}

	parsed, err := ampute.ParseMechanism("mnar")
	require.NoError(t, err, "parsing is case-insensitive")
	assert.Equal(t, ampute.MNAR, parsed)

	_, err = ampute.ParseMechanism("sometimes")
	assert.ErrorIs(t, err, ampute.ErrUnknownMechanism)
}

// TestMask_Accessors covers the small Mask surface directly.
func TestMask_Accessors(t *testing.T) {
	m := ampute.NewMask(2, 3)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, 0.0, m.Density())

	clone := m.Clone()
	assert.Equal(t, 0, clone.Count())
}
