// Package ampute - mechanism implementations.
//
// This file holds the single entry point Amputate and the rank-threshold
// machinery shared by MAR and MNAR.
//
// Design principles:
//   - Determinism: seed routing only; no time-based randomness.
//   - Strict sentinels: validation errors come from types.go only.
//   - Purity: the input matrix is copied, never mutated.
package ampute

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// defaultSeed is the fixed seed used when callers pass seed==0. The value is
// arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// rankFloor sets the baseline of the rank-threshold probability
// p = fraction′·(rankFloor + rank). rankFloor + E[rank] must equal 1 so the
// expected density stays on target before clamping.
const rankFloor = 0.5

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Amputate removes entries from X under the requested mechanism at the
// requested expected fraction and returns the NaN-marked copy plus the mask.
//
// Contracts:
//   - X non-nil and non-empty; fraction ∈ (0,1); mech valid.
//   - MAR additionally requires at least two columns.
//
// Guarantees:
//   - Observed entries of the returned matrix are bit-identical to X.
//   - Every column keeps at least one observed entry (restore-one policy).
//   - Same (X, mech, fraction, seed) ⇒ same mask.
//
// Complexity: O(n·p) for MCAR, O(n·p + p·n log n) for the ranked mechanisms.
func Amputate(X *mat.Dense, mech Mechanism, fraction float64, opts *Options) (*mat.Dense, *Mask, error) {
	if X == nil {
		return nil, nil, ErrNilMatrix
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, nil, ErrEmptyMatrix
	}
	if !(fraction > 0 && fraction < 1) {
		return nil, nil, ErrBadFraction
	}
	if !mech.Valid() {
		return nil, nil, ErrUnknownMechanism
	}
	if mech == MAR && c < 2 {
		return nil, nil, ErrTooFewColumns
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	rng := rngFromSeed(o.Seed)

	mask := NewMask(r, c)
	switch mech {
	case MCAR:
		amputeMCAR(mask, fraction, rng)
	case MAR:
		amputeMAR(X, mask, fraction, rng)
	case MNAR:
		amputeMNAR(X, mask, fraction, rng)
	}
	ensureColumnObserved(mask, rng)

	Xna := mat.DenseCopyOf(X)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if mask.At(i, j) {
				Xna.Set(i, j, math.NaN())
			}
		}
	}
	return Xna, mask, nil
}

// amputeMCAR removes each entry independently with probability fraction.
func amputeMCAR(mask *Mask, fraction float64, rng *rand.Rand) {
	r, c := mask.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if rng.Float64() < fraction {
				mask.Set(i, j, true)
			}
		}
	}
}

// amputeMAR keeps column 0 fully observed as the driver and removes entries
// of every other column with probability target·(rankFloor + rank_i), where
// rank_i is row i's percentile under the driver and target rescales fraction
// over the c-1 eligible columns so the overall expected density stays at
// fraction. Probabilities clamp at 1; with rankFloor=0.5 the clamp bites only
// for target > 2/3 and shaves a few percent off the realized density, which
// is inside the documented tolerance band.
func amputeMAR(X *mat.Dense, mask *Mask, fraction float64, rng *rand.Rand) {
	r, c := mask.Dims()
	target := fraction * float64(c) / float64(c-1)
	ranks := columnRanks(X, 0)
	var i, j int
	for j = 1; j < c; j++ {
		for i = 0; i < r; i++ {
			if rng.Float64() < clampProb(target*(rankFloor+ranks[i])) {
				mask.Set(i, j, true)
			}
		}
	}
}

// amputeMNAR removes entries with probability fraction·(rankFloor + rank),
// ranked by the entry's own column value, so larger values are more likely
// to go missing and missingness depends on the removed value itself.
func amputeMNAR(X *mat.Dense, mask *Mask, fraction float64, rng *rand.Rand) {
	r, c := mask.Dims()
	var i, j int
	for j = 0; j < c; j++ {
		ranks := columnRanks(X, j)
		for i = 0; i < r; i++ {
			if rng.Float64() < clampProb(fraction*(rankFloor+ranks[i])) {
				mask.Set(i, j, true)
			}
		}
	}
}

// columnRanks returns each row's percentile in [0,1) under column j of X,
// ties broken by row order for determinism.
func columnRanks(X *mat.Dense, j int) []float64 {
	r, _ := X.Dims()
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return X.At(idx[a], j) < X.At(idx[b], j)
	})
	ranks := make([]float64, r)
	for pos, i := range idx {
		ranks[i] = float64(pos) / float64(r)
	}
	return ranks
}

// ensureColumnObserved restores one uniformly chosen entry in any column
// that ended fully masked, keeping column statistics defined downstream.
func ensureColumnObserved(mask *Mask, rng *rand.Rand) {
	r, c := mask.Dims()
	var i, j int
	for j = 0; j < c; j++ {
		full := true
		for i = 0; i < r; i++ {
			if !mask.At(i, j) {
				full = false
				break
			}
		}
		if full {
			mask.Set(rng.Intn(r), j, false)
		}
	}
}

// clampProb clips p into [0,1].
func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
