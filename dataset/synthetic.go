package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// defaultSyntheticSeed is the fixed seed used when callers pass Seed==0, so
// the default configuration is reproducible rather than time-dependent.
const defaultSyntheticSeed uint64 = 1

// SyntheticOptions configures SyntheticNormal.
//
// Fields:
//   - Mean        — shared mean of every variable (default 1).
//   - Variance    — shared variance of every variable (default 1).
//   - Correlation — shared pairwise correlation in [0,1) (default 0.5), i.e.
//     covariance Variance·(Correlation + (1-Correlation)·1{j=k}).
//   - Seed        — RNG seed; 0 selects a fixed default.
type SyntheticOptions struct {
	Mean        float64
	Variance    float64
	Correlation float64
	Seed        uint64
}

// DefaultSyntheticOptions mirrors the classical equicorrelated benchmark
// fixture: unit variance split evenly between shared and idiosyncratic parts.
func DefaultSyntheticOptions() SyntheticOptions {
	return SyntheticOptions{Mean: 1, Variance: 1, Correlation: 0.5}
}

// SyntheticNormal draws an n×p table from a multivariate normal with a
// constant mean vector and an equicorrelated covariance matrix.
//
// Contracts:
//   - n ≥ 1, p ≥ 1 (ErrBadShape otherwise).
//   - Variance > 0 and Correlation ∈ [0,1) so the covariance is positive
//     definite (ErrBadCovariance otherwise).
//
// Determinism: the same options always produce the same table.
//
// Complexity: O(p²) setup for the covariance factorization, O(n·p²) sampling.
func SyntheticNormal(n, p int, opts *SyntheticOptions) (*Dataset, error) {
	o := DefaultSyntheticOptions()
	if opts != nil {
		o = *opts
	}
	if n < 1 || p < 1 {
		return nil, fmt.Errorf("%w: n=%d p=%d", ErrBadShape, n, p)
	}
	if o.Variance <= 0 || o.Correlation < 0 || o.Correlation >= 1 {
		return nil, fmt.Errorf("%w: variance=%g correlation=%g", ErrBadCovariance, o.Variance, o.Correlation)
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultSyntheticSeed
	}

	mu := make([]float64, p)
	cov := mat.NewSymDense(p, nil)
	var j, k int
	for j = 0; j < p; j++ {
		mu[j] = o.Mean
		cov.SetSym(j, j, o.Variance)
		for k = j + 1; k < p; k++ {
			cov.SetSym(j, k, o.Variance*o.Correlation)
		}
	}

	src := rand.NewSource(seed)
	normal, ok := distmv.NewNormal(mu, cov, src)
	if !ok {
		return nil, ErrBadCovariance
	}

	m := mat.NewDense(n, p, nil)
	row := make([]float64, p)
	names := make([]string, p)
	for j = 0; j < p; j++ {
		names[j] = fmt.Sprintf("V%d", j+1)
	}
	var i int
	for i = 0; i < n; i++ {
		normal.Rand(row)
		m.SetRow(i, row)
	}
	return New(names, m)
}
