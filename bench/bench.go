// Package bench - the sweep control loop.
//
// Design principles:
//   - Validate everything up front, then dispatch (no partial sweeps on
//     misuse).
//   - Pure fold over the (fraction × mechanism) index set: each cell is
//     computed independently from index-derived seeds and dropped into its
//     slot, sequentially or in parallel, with identical results.
//   - Skip-and-continue on recoverable imputer failures; never abort a
//     sweep for one bad draw.
package bench

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/impute"
)

// Run executes the full benchmark sweep of imputers over X.
//
// For every cell (fraction, mechanism) and every repetition, a fresh mask is
// drawn, each imputer completes the identical incomplete matrix, and RMSE is
// taken against X on that mask. Cell scores are the per-method averages over
// the repetitions that succeeded.
//
// Errors: only fast-fail input-validity errors (see types.go). Recoverable
// per-draw imputer failures are logged (when a Logger is set) and averaged
// around; an RMSE ErrEmptyMask would indicate a broken amputation guarantee
// and does abort.
//
// Complexity: |fractions|·|mechanisms|·Repetitions full imputer runs.
func Run(X *mat.Dense, imputers []impute.Imputer, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(X, imputers, &o); err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, len(o.Fractions)*len(o.Mechanisms))
	for _, f := range o.Fractions {
		for _, m := range o.Mechanisms {
			cells = append(cells, Cell{Fraction: f, Mechanism: m})
		}
	}

	methods := make([]string, len(imputers))
	for i, imp := range imputers {
		methods[i] = imp.Name()
	}

	base := normalizeSeed(o.Seed)
	scores := make([][]float64, len(cells))

	if o.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for idx := range cells {
			g.Go(func() error {
				row, err := runCell(X, imputers, cells[idx], idx, base, &o)
				if err != nil {
					return err
				}
				scores[idx] = row
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for idx := range cells {
			row, err := runCell(X, imputers, cells[idx], idx, base, &o)
			if err != nil {
				return nil, err
			}
			scores[idx] = row
		}
	}

	return &Result{methods: methods, cells: cells, scores: scores}, nil
}

// runCell averages every method over the cell's repetitions. The returned
// row is NaN for methods with zero successful repetitions.
func runCell(X *mat.Dense, imputers []impute.Imputer, cell Cell, cellIdx int, base int64, o *Options) ([]float64, error) {
	sums := make([]float64, len(imputers))
	counts := make([]int, len(imputers))

	for rep := 0; rep < o.Repetitions; rep++ {
		seed := drawSeed(base, cellIdx, rep)
		Xna, mask, err := ampute.Amputate(X, cell.Mechanism, cell.Fraction, &ampute.Options{Seed: seed})
		if err != nil {
			// Amputation only fails on invalid input, which validate already
			// excluded; treat anything here as fatal.
			return nil, fmt.Errorf("bench: amputate %s rep %d: %w", cell, rep, err)
		}

		for mi, imp := range imputers {
			Ximp, ierr := imp.Impute(Xna)
			if ierr != nil {
				if o.Logger != nil {
					o.Logger.Warn("imputer failed, skipping draw",
						"method", imp.Name(), "cell", cell.String(), "rep", rep, "err", ierr)
				}
				continue
			}
			score, serr := RMSE(Ximp, X, mask)
			if serr != nil {
				// Empty masks cannot occur after a successful Amputate;
				// any metric error is a broken invariant.
				return nil, fmt.Errorf("bench: score %s %s rep %d: %w", imp.Name(), cell, rep, serr)
			}
			sums[mi] += score
			counts[mi]++
		}
	}

	row := make([]float64, len(imputers))
	for mi := range imputers {
		if counts[mi] == 0 {
			row[mi] = math.NaN()
			continue
		}
		row[mi] = sums[mi] / float64(counts[mi])
	}
	return row, nil
}

// validate applies the fast-fail input checks of §"Failure policy".
func validate(X *mat.Dense, imputers []impute.Imputer, o *Options) error {
	if X == nil {
		return ErrNilMatrix
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v := X.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: at (%d,%d)", ErrNonFinite, i, j)
			}
		}
	}

	if len(imputers) == 0 {
		return ErrNoImputers
	}
	seen := make(map[string]struct{}, len(imputers))
	for _, imp := range imputers {
		name := imp.Name()
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateMethod, name)
		}
		seen[name] = struct{}{}
	}

	if len(o.Fractions) == 0 {
		return ErrNoFractions
	}
	for _, f := range o.Fractions {
		if !(f > 0 && f < 1) {
			return fmt.Errorf("%w: %g", ErrBadFraction, f)
		}
	}
	if len(o.Mechanisms) == 0 {
		return ErrNoMechanisms
	}
	for _, m := range o.Mechanisms {
		if !m.Valid() {
			return fmt.Errorf("%w: %d", ampute.ErrUnknownMechanism, int(m))
		}
	}
	if o.Repetitions < 1 {
		return ErrBadRepetitions
	}
	return nil
}
