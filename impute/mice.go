// Package impute - multiple imputation by chained equations.
//
// Algorithm outline:
//  1. Warm-start a working copy with column-mean fill.
//  2. Sweep the columns with missing entries: regress each on all other
//     columns over its observed rows (ridge-stabilized least squares),
//     then redraw its missing entries from the fitted model plus Gaussian
//     residual noise (stochastic regression, not deterministic prediction).
//  3. Repeat for Sweeps Gibbs passes; that yields one imputation.
//  4. Run M independent imputations and combine them by averaging, the
//     combination rule used throughout this module's benchmarks.
package impute

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// MICEOptions configures MICE.
//
// Fields:
//   - M      — number of imputations to average (default 5).
//   - Sweeps — Gibbs passes over the columns per imputation (default 10).
//   - Ridge  — Tikhonov stabilizer added to every regression (default 1e-6);
//     keeps degenerate designs solvable instead of failing mid-sweep.
//   - Seed   — RNG seed; 0 ⇒ fixed default. Imputation m uses an
//     independent substream derived from the seed.
type MICEOptions struct {
	M      int
	Sweeps int
	Ridge  float64
	Seed   int64
}

// DefaultMICEOptions returns the standard configuration.
func DefaultMICEOptions() MICEOptions {
	return MICEOptions{M: 5, Sweeps: 10, Ridge: 1e-6}
}

// MICE is chained-equations multiple imputation with linear conditional
// models. Suits data whose variables are (approximately) linearly related;
// the averaging of M draws smooths the injected residual noise back out.
type MICE struct {
	opts MICEOptions
}

// NewMICE builds the imputer; nil opts selects the defaults.
func NewMICE(opts *MICEOptions) *MICE {
	o := DefaultMICEOptions()
	if opts != nil {
		o = *opts
		if o.M <= 0 {
			o.M = 5
		}
		if o.Sweeps <= 0 {
			o.Sweeps = 10
		}
		if o.Ridge <= 0 {
			o.Ridge = 1e-6
		}
	}
	return &MICE{opts: o}
}

// Name implements Imputer.
func (*MICE) Name() string { return "mice" }

// Impute implements Imputer.
//
// Errors:
//   - Input validity: ErrNilMatrix, ErrEmptyMatrix, ErrEmptyColumn.
//   - Regression failures inside a sweep are prevented by construction: the
//     ridge augmentation keeps every design full rank.
//
// Complexity: O(M · Sweeps · p · n·p²) in the worst case; small p keeps it
// comfortably interactive.
func (m *MICE) Impute(Xna *mat.Dense) (*mat.Dense, error) {
	r, c, err := validateInput(Xna)
	if err != nil {
		return nil, err
	}
	cells, nmiss := missingCells(Xna)
	if nmiss == 0 {
		return mat.DenseCopyOf(Xna), nil
	}
	if _, err = observedColumnMeans(Xna); err != nil {
		return nil, err
	}

	missingCols := columnsWithMissing(cells, r, c)
	accum := mat.NewDense(r, c, nil)

	for draw := 0; draw < m.opts.M; draw++ {
		rng := deriveRNG(m.opts.Seed, uint64(draw))
		W, werr := meanFilled(Xna)
		if werr != nil {
			return nil, werr
		}
		for sweep := 0; sweep < m.opts.Sweeps; sweep++ {
			for _, j := range missingCols {
				m.redrawColumn(W, cells, j, rng)
			}
		}
		accum.Add(accum, W)
	}

	accum.Scale(1/float64(m.opts.M), accum)
	restoreObserved(accum, Xna)
	return accum, nil
}

// redrawColumn refits column j on all other columns over its observed rows
// and redraws its missing rows from the fitted line plus residual noise.
func (m *MICE) redrawColumn(W *mat.Dense, cells []bool, j int, rng *rand.Rand) {
	r, c := W.Dims()

	obs := make([]int, 0, r)
	miss := make([]int, 0, r)
	var i int
	for i = 0; i < r; i++ {
		if cells[i*c+j] {
			miss = append(miss, i)
		} else {
			obs = append(obs, i)
		}
	}
	if len(miss) == 0 || len(obs) < 2 {
		// Nothing to redraw, or not enough rows to fit anything beyond the
		// mean fill already in place.
		return
	}

	// Design: intercept + the other c-1 columns; ridge rows appended so the
	// normal equations stay full rank whatever the data looks like.
	k := c // intercept + (c-1) predictors
	A := mat.NewDense(len(obs)+k, k, nil)
	b := mat.NewVecDense(len(obs)+k, nil)
	for row, src := range obs {
		A.Set(row, 0, 1)
		col := 1
		for p := 0; p < c; p++ {
			if p == j {
				continue
			}
			A.Set(row, col, W.At(src, p))
			col++
		}
		b.SetVec(row, W.At(src, j))
	}
	sqrtRidge := math.Sqrt(m.opts.Ridge)
	for d := 0; d < k; d++ {
		A.Set(len(obs)+d, d, sqrtRidge)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(A, b); err != nil {
		// Should not happen with the ridge rows in place; keep the current
		// fill for this pass rather than poisoning the sweep.
		return
	}

	// Residual spread from the observed rows.
	sse := 0.0
	for row, src := range obs {
		pred := predictRow(A, &beta, row)
		d := W.At(src, j) - pred
		sse += d * d
	}
	dof := len(obs) - k
	if dof < 1 {
		dof = 1
	}
	sigma := math.Sqrt(sse / float64(dof))

	// Stochastic redraw of the missing rows.
	x := make([]float64, k)
	for _, src := range miss {
		x[0] = 1
		col := 1
		for p := 0; p < c; p++ {
			if p == j {
				continue
			}
			x[col] = W.At(src, p)
			col++
		}
		pred := 0.0
		for d := 0; d < k; d++ {
			pred += beta.AtVec(d) * x[d]
		}
		W.Set(src, j, pred+rng.NormFloat64()*sigma)
	}
}

// predictRow evaluates the fitted line on row `row` of the design matrix.
func predictRow(A *mat.Dense, beta *mat.VecDense, row int) float64 {
	_, k := A.Dims()
	sum := 0.0
	for d := 0; d < k; d++ {
		sum += A.At(row, d) * beta.AtVec(d)
	}
	return sum
}

// columnsWithMissing lists the columns containing at least one missing cell,
// in ascending column order for deterministic sweeps.
func columnsWithMissing(cells []bool, r, c int) []int {
	out := make([]int, 0, c)
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if cells[i*c+j] {
				out = append(out, j)
				break
			}
		}
	}
	return out
}
