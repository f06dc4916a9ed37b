// Package impute - low-rank matrix completion by soft-thresholded SVD.
//
// Algorithm outline (Mazumder, Hastie & Tibshirani's SoftImpute):
//  1. Warm-start Z with column-mean fill.
//  2. Factorize Z = U·Σ·Vᵀ and shrink singular values: σᵢ ← max(σᵢ-λ, 0).
//  3. Rebuild the shrunk reconstruction, restore observed entries from Xna.
//  4. Repeat until the relative Frobenius change falls under Tol.
//
// λ is tuned by internal cross-validation over a geometric grid anchored at
// the largest singular value of the mean-filled matrix.
package impute

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// lambdaRatios is the default tuning grid, as fractions of the largest
// singular value of the warm start. Anchoring at σ₁ keeps the grid scale-free.
var lambdaRatios = []float64{0.5, 0.2, 0.1, 0.05, 0.02}

// SoftImputeOptions configures SoftImpute.
//
// Fields:
//   - Lambdas    — candidate shrinkage values; empty selects the default
//     grid (lambdaRatios × σ₁ of the mean-filled input).
//   - MaxRank    — cap on the reconstruction rank; 0 means min(n,p).
//   - Tol        — relative Frobenius convergence tolerance (default 1e-4).
//   - MaxIter    — iteration budget per solve (default 100).
//   - CVRounds   — cross-validation repetitions for λ tuning (default 3);
//     0 disables tuning and the first candidate wins.
//   - CVFraction — share of observed entries hidden per CV round (default 0.1).
//   - Seed       — RNG seed for the CV hold-outs; 0 ⇒ fixed default.
type SoftImputeOptions struct {
	Lambdas    []float64
	MaxRank    int
	Tol        float64
	MaxIter    int
	CVRounds   int
	CVFraction float64
	Seed       int64
}

// DefaultSoftImputeOptions returns the standard configuration.
func DefaultSoftImputeOptions() SoftImputeOptions {
	return SoftImputeOptions{
		Tol:        1e-4,
		MaxIter:    100,
		CVRounds:   3,
		CVFraction: 0.1,
	}
}

// SoftImpute completes a matrix with a low-rank fit under nuclear-norm
// shrinkage. Effective when variables are linearly related, i.e. the
// underlying signal matrix is (approximately) low rank.
type SoftImpute struct {
	opts SoftImputeOptions
}

// NewSoftImpute builds the imputer; nil opts selects the defaults.
func NewSoftImpute(opts *SoftImputeOptions) *SoftImpute {
	o := DefaultSoftImputeOptions()
	if opts != nil {
		o = *opts
		if o.Tol <= 0 {
			o.Tol = 1e-4
		}
		if o.MaxIter <= 0 {
			o.MaxIter = 100
		}
		if o.CVFraction <= 0 || o.CVFraction >= 1 {
			o.CVFraction = 0.1
		}
	}
	return &SoftImpute{opts: o}
}

// Name implements Imputer.
func (*SoftImpute) Name() string { return "softimpute" }

// Impute implements Imputer.
//
// Errors:
//   - Input validity: ErrNilMatrix, ErrEmptyMatrix, ErrEmptyColumn.
//   - ErrNoConvergence (recoverable) when the iteration budget runs out or
//     the SVD fails to factorize.
func (s *SoftImpute) Impute(Xna *mat.Dense) (*mat.Dense, error) {
	if _, _, err := validateInput(Xna); err != nil {
		return nil, err
	}
	if _, nmiss := missingCells(Xna); nmiss == 0 {
		return mat.DenseCopyOf(Xna), nil
	}

	warm, err := meanFilled(Xna)
	if err != nil {
		return nil, err
	}

	lambdas := s.opts.Lambdas
	if len(lambdas) == 0 {
		sigma1, ferr := largestSingularValue(warm)
		if ferr != nil {
			return nil, ferr
		}
		lambdas = make([]float64, len(lambdaRatios))
		for i, ratio := range lambdaRatios {
			lambdas[i] = ratio * sigma1
		}
	}

	lambda := lambdas[0]
	if len(lambdas) > 1 && s.opts.CVRounds > 0 {
		rng := rngFromSeed(s.opts.Seed)
		lambda, err = crossValidate(Xna, lambdas, s.opts.CVRounds, s.opts.CVFraction, rng, s.solve)
		if err != nil {
			return nil, err
		}
	}
	return s.solve(Xna, lambda)
}

// solve runs the soft-threshold iteration for one fixed λ.
func (s *SoftImpute) solve(Xna *mat.Dense, lambda float64) (*mat.Dense, error) {
	r, c := Xna.Dims()
	Z, err := meanFilled(Xna)
	if err != nil {
		return nil, err
	}

	maxRank := s.opts.MaxRank
	if maxRank <= 0 || maxRank > min(r, c) {
		maxRank = min(r, c)
	}

	var svd mat.SVD
	var u, v mat.Dense
	for iter := 0; iter < s.opts.MaxIter; iter++ {
		if ok := svd.Factorize(Z, mat.SVDThin); !ok {
			return nil, fmt.Errorf("%w: svd failed at iteration %d", ErrNoConvergence, iter)
		}
		vals := svd.Values(nil)
		svd.UTo(&u)
		svd.VTo(&v)

		// Shrink and truncate the spectrum.
		rank := 0
		for _, sv := range vals {
			if sv-lambda > 0 && rank < maxRank {
				vals[rank] = sv - lambda
				rank++
			}
		}
		if rank == 0 {
			// Everything shrunk away: keep the dominant direction so the
			// reconstruction stays informative instead of collapsing to zero.
			rank = 1
			vals[0] = math.SmallestNonzeroFloat64
		}

		Znew := reconstructLowRank(&u, &v, vals[:rank], r, c)
		restoreObserved(Znew, Xna)

		if relativeChange(Z, Znew) < s.opts.Tol {
			return Znew, nil
		}
		Z = Znew
	}
	return nil, fmt.Errorf("%w: softimpute exceeded %d iterations", ErrNoConvergence, s.opts.MaxIter)
}

// largestSingularValue returns σ₁ of A.
func largestSingularValue(A *mat.Dense) (float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDNone); !ok {
		return 0, fmt.Errorf("%w: svd failed on warm start", ErrNoConvergence)
	}
	vals := svd.Values(nil)
	return vals[0], nil
}

// reconstructLowRank assembles Σᵢ dᵢ·uᵢ·vᵢᵀ for the leading len(d) factors.
func reconstructLowRank(u, v *mat.Dense, d []float64, r, c int) *mat.Dense {
	out := mat.NewDense(r, c, nil)
	var i, j, k int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sum := 0.0
			for k = 0; k < len(d); k++ {
				sum += d[k] * u.At(i, k) * v.At(j, k)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}
