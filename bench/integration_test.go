package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/bench"
	"github.com/katalvlaran/imputelab/dataset"
	"github.com/katalvlaran/imputelab/impute"
)

// TestRun_ImputersBeatMeanOnCorrelatedData is the end-to-end sanity check:
// on 1000×10 equicorrelated gaussian data (covariance 0.5·I + 0.5·J) under
// MCAR, every model-based method must reconstruct better than the
// column-mean baseline.
func TestRun_ImputersBeatMeanOnCorrelatedData(t *testing.T) {
	if testing.Short() {
		t.Skip("full sweep is slow")
	}

	ds, err := dataset.SyntheticNormal(1000, 10, &dataset.SyntheticOptions{
		Mean: 1, Variance: 1, Correlation: 0.5, Seed: 31,
	})
	require.NoError(t, err)

	imputers := []impute.Imputer{
		impute.NewMean(),
		impute.NewSoftImpute(&impute.SoftImputeOptions{
			Lambdas: []float64{0.2}, Tol: 1e-3, MaxIter: 200, Seed: 7,
		}),
		impute.NewMICE(&impute.MICEOptions{M: 3, Sweeps: 5, Seed: 7}),
		impute.NewForest(&impute.ForestOptions{Trees: 20, MaxDepth: 8, MinLeaf: 5, MaxIter: 3, Seed: 7}),
		impute.NewIterPCA(&impute.IterPCAOptions{Components: 2, Tol: 1e-3, MaxIter: 200, Seed: 7}),
	}

	res, err := bench.Run(ds.Matrix(), imputers, &bench.Options{
		Fractions:   []float64{0.3},
		Mechanisms:  []ampute.Mechanism{ampute.MCAR},
		Repetitions: 3,
		Seed:        13,
		Workers:     4,
	})
	require.NoError(t, err)

	cell := bench.Cell{Fraction: 0.3, Mechanism: ampute.MCAR}
	baseline, err := res.Score(cell, "mean")
	require.NoError(t, err)
	require.False(t, math.IsNaN(baseline))

	for _, method := range []string{"softimpute", "mice", "forest", "iterpca"} {
		score, err := res.Score(cell, method)
		require.NoError(t, err)
		assert.Lessf(t, score, baseline,
			"%s should beat the mean baseline on equicorrelated data", method)
	}
}
