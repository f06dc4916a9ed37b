// Package impute - iterative PCA imputation.
//
// Algorithm outline (EM-flavored, after the imputePCA procedure):
//  1. Warm-start Z with column-mean fill.
//  2. Center Z by its current column means, project on the leading k
//     principal components via SVD, rebuild and un-center.
//  3. Restore observed entries from Xna; repeat until the relative
//     Frobenius change falls under Tol.
//
// The component count k is tuned by the shared internal cross-validation
// when not fixed explicitly.
package impute

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// IterPCAOptions configures IterPCA.
//
// Fields:
//   - Components    — fixed component count; 0 means tune over
//     1..MaxComponents by cross-validation.
//   - MaxComponents — top of the tuning range; 0 derives min(n-1, p-1, 5).
//   - Tol           — relative Frobenius convergence tolerance (default 1e-4).
//   - MaxIter       — iteration budget per solve (default 200).
//   - CVRounds      — cross-validation repetitions (default 3).
//   - CVFraction    — share of observed entries hidden per round (default 0.1).
//   - Seed          — RNG seed for the CV hold-outs; 0 ⇒ fixed default.
type IterPCAOptions struct {
	Components    int
	MaxComponents int
	Tol           float64
	MaxIter       int
	CVRounds      int
	CVFraction    float64
	Seed          int64
}

// DefaultIterPCAOptions returns the standard configuration.
func DefaultIterPCAOptions() IterPCAOptions {
	return IterPCAOptions{
		Tol:        1e-4,
		MaxIter:    200,
		CVRounds:   3,
		CVFraction: 0.1,
	}
}

// IterPCA completes a matrix by alternating between principal-component
// reconstruction and observed-entry restoration. Close kin of SoftImpute
// with hard rank truncation instead of spectral shrinkage, and with
// column-mean centering inside the loop.
type IterPCA struct {
	opts IterPCAOptions
}

// NewIterPCA builds the imputer; nil opts selects the defaults.
func NewIterPCA(opts *IterPCAOptions) *IterPCA {
	o := DefaultIterPCAOptions()
	if opts != nil {
		o = *opts
		if o.Tol <= 0 {
			o.Tol = 1e-4
		}
		if o.MaxIter <= 0 {
			o.MaxIter = 200
		}
		if o.CVFraction <= 0 || o.CVFraction >= 1 {
			o.CVFraction = 0.1
		}
	}
	return &IterPCA{opts: o}
}

// Name implements Imputer.
func (*IterPCA) Name() string { return "iterpca" }

// Impute implements Imputer.
//
// Errors:
//   - Input validity: ErrNilMatrix, ErrEmptyMatrix, ErrEmptyColumn.
//   - ErrBadOption when Components exceeds what the shape admits.
//   - ErrNoConvergence (recoverable) when the iteration budget runs out.
func (p *IterPCA) Impute(Xna *mat.Dense) (*mat.Dense, error) {
	r, c, err := validateInput(Xna)
	if err != nil {
		return nil, err
	}
	if _, nmiss := missingCells(Xna); nmiss == 0 {
		return mat.DenseCopyOf(Xna), nil
	}

	limit := min(r-1, c-1)
	if limit < 1 {
		limit = 1
	}

	if k := p.opts.Components; k > 0 {
		if k > limit {
			return nil, fmt.Errorf("%w: %d components for a %d×%d matrix", ErrBadOption, k, r, c)
		}
		return p.solve(Xna, float64(k))
	}

	maxK := p.opts.MaxComponents
	if maxK <= 0 || maxK > limit {
		maxK = min(limit, 5)
	}
	candidates := make([]float64, maxK)
	for k := 1; k <= maxK; k++ {
		candidates[k-1] = float64(k)
	}

	rng := rngFromSeed(p.opts.Seed)
	k, err := crossValidate(Xna, candidates, p.opts.CVRounds, p.opts.CVFraction, rng, p.solve)
	if err != nil {
		return nil, err
	}
	return p.solve(Xna, k)
}

// solve runs the reconstruct-restore iteration for a fixed component count.
func (p *IterPCA) solve(Xna *mat.Dense, kParam float64) (*mat.Dense, error) {
	k := int(kParam)
	r, c := Xna.Dims()
	Z, err := meanFilled(Xna)
	if err != nil {
		return nil, err
	}

	var svd mat.SVD
	var u, v mat.Dense
	centered := mat.NewDense(r, c, nil)
	means := make([]float64, c)

	var i, j int
	for iter := 0; iter < p.opts.MaxIter; iter++ {
		// Center by the current column means.
		for j = 0; j < c; j++ {
			sum := 0.0
			for i = 0; i < r; i++ {
				sum += Z.At(i, j)
			}
			means[j] = sum / float64(r)
		}
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				centered.Set(i, j, Z.At(i, j)-means[j])
			}
		}

		if ok := svd.Factorize(centered, mat.SVDThin); !ok {
			return nil, fmt.Errorf("%w: svd failed at iteration %d", ErrNoConvergence, iter)
		}
		vals := svd.Values(nil)
		svd.UTo(&u)
		svd.VTo(&v)

		rank := k
		if rank > len(vals) {
			rank = len(vals)
		}
		Znew := reconstructLowRank(&u, &v, vals[:rank], r, c)
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				Znew.Set(i, j, Znew.At(i, j)+means[j])
			}
		}
		restoreObserved(Znew, Xna)

		if relativeChange(Z, Znew) < p.opts.Tol {
			return Znew, nil
		}
		Z = Znew
	}
	return nil, fmt.Errorf("%w: iterpca exceeded %d iterations", ErrNoConvergence, p.opts.MaxIter)
}
