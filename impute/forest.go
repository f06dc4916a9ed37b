// Package impute - random-forest imputation.
//
// Algorithm outline (after missForest):
//  1. Warm-start a working copy with column-mean fill.
//  2. Visit the incomplete columns in ascending missing-count order; for
//     each, fit a regression forest on its observed rows (predictors: all
//     other columns of the current working copy) and overwrite its missing
//     rows with forest predictions.
//  3. Track the normalized squared change of the imputed cells between
//     rounds; stop when it rises (keeping the previous round's values, the
//     missForest stopping rule) or the round budget runs out.
package impute

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ForestOptions configures Forest.
//
// Fields:
//   - Trees    — trees per column model (default 50).
//   - MaxDepth — tree depth bound (default 10).
//   - MinLeaf  — minimum rows per leaf (default 5).
//   - MTry     — candidate features per split; 0 derives max(1, (p-1)/3).
//   - MaxIter  — maximum imputation rounds (default 5).
//   - Seed     — RNG seed; 0 ⇒ fixed default. Every column model draws an
//     independent substream, so column order never biases the bootstraps.
type ForestOptions struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	MTry     int
	MaxIter  int
	Seed     int64
}

// DefaultForestOptions returns the standard configuration.
func DefaultForestOptions() ForestOptions {
	return ForestOptions{Trees: 50, MaxDepth: 10, MinLeaf: 5, MaxIter: 5}
}

// Forest is missForest-style imputation: nonparametric, interaction-aware,
// and the only method here that handles nonlinear column relationships.
type Forest struct {
	opts ForestOptions
}

// NewForest builds the imputer; nil opts selects the defaults.
func NewForest(opts *ForestOptions) *Forest {
	o := DefaultForestOptions()
	if opts != nil {
		o = *opts
		if o.Trees <= 0 {
			o.Trees = 50
		}
		if o.MaxDepth <= 0 {
			o.MaxDepth = 10
		}
		if o.MinLeaf <= 0 {
			o.MinLeaf = 5
		}
		if o.MaxIter <= 0 {
			o.MaxIter = 5
		}
	}
	return &Forest{opts: o}
}

// Name implements Imputer.
func (*Forest) Name() string { return "forest" }

// Impute implements Imputer.
//
// Errors:
//   - Input validity: ErrNilMatrix, ErrEmptyMatrix, ErrEmptyColumn.
//
// Complexity: O(MaxIter · p · Trees · n log n · depth) — by far the most
// expensive method in the package, which matches its benchmark role.
func (f *Forest) Impute(Xna *mat.Dense) (*mat.Dense, error) {
	r, c, err := validateInput(Xna)
	if err != nil {
		return nil, err
	}
	cells, nmiss := missingCells(Xna)
	if nmiss == 0 {
		return mat.DenseCopyOf(Xna), nil
	}

	W, err := meanFilled(Xna)
	if err != nil {
		return nil, err
	}

	mtry := f.opts.MTry
	if mtry <= 0 {
		mtry = (c - 1) / 3
		if mtry < 1 {
			mtry = 1
		}
	}
	params := forestParams{maxDepth: f.opts.MaxDepth, minLeaf: f.opts.MinLeaf, mtry: mtry}

	order := columnsByMissingCount(cells, r, c)
	prevDiff := math.Inf(1)
	stream := uint64(0)

	for iter := 0; iter < f.opts.MaxIter; iter++ {
		old := mat.DenseCopyOf(W)

		for _, j := range order {
			obs := make([]int, 0, r)
			miss := make([]int, 0, r)
			for i := 0; i < r; i++ {
				if cells[i*c+j] {
					miss = append(miss, i)
				} else {
					obs = append(obs, i)
				}
			}
			if len(obs) < 2*params.minLeaf {
				continue // too few rows to grow anything beyond the mean fill
			}
			rng := deriveRNG(f.opts.Seed, stream)
			stream++
			model := growForest(W, j, obs, f.opts.Trees, params, rng)
			for _, i := range miss {
				W.Set(i, j, model.predict(W, i))
			}
		}

		diff := imputedChange(W, old, cells)
		if diff >= prevDiff {
			// The fit started degrading: keep the previous round.
			W = old
			break
		}
		prevDiff = diff
	}

	restoreObserved(W, Xna)
	return W, nil
}

// columnsByMissingCount lists the incomplete columns ordered by ascending
// missing count (ties by index), the missForest visiting order: columns with
// the most information are refit first.
func columnsByMissingCount(cells []bool, r, c int) []int {
	counts := make([]int, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if cells[i*c+j] {
				counts[j]++
			}
		}
	}
	order := make([]int, 0, c)
	for j = 0; j < c; j++ {
		if counts[j] > 0 {
			order = append(order, j)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] < counts[order[b]]
	})
	return order
}

// imputedChange is Σ(new-old)² / Σ new² over the imputed cells only —
// the missForest convergence statistic.
func imputedChange(W, old *mat.Dense, cells []bool) float64 {
	_, c := W.Dims()
	num, den := 0.0, 0.0
	for cell, missing := range cells {
		if !missing {
			continue
		}
		v := W.At(cell/c, cell%c)
		d := v - old.At(cell/c, cell%c)
		num += d * d
		den += v * v
	}
	if den == 0 {
		return 0
	}
	return num / den
}
