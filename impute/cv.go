// Package impute - internal cross-validation for parameter tuning.
//
// SoftImpute (shrinkage λ) and IterPCA (component count) both tune a single
// scalar by re-amputing a slice of the observed entries and scoring each
// candidate's reconstruction of the hidden slice. The tuner is a black box
// to the imputers: give it candidates and a solver, get back the winner.
package impute

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// cvSolver completes Xna under one candidate parameter value.
type cvSolver func(Xna *mat.Dense, param float64) (*mat.Dense, error)

// crossValidate returns the candidate with the lowest held-out RMSE averaged
// over rounds.
//
// Per round: hide ≈ holdFraction of the still-observed entries of Xna
// (uniformly, never a column's last observation), run solve for every
// candidate on the doubly incomplete matrix, and score against the hidden
// values. A candidate that fails a round scores +Inf for that round.
//
// Edge cases:
//   - len(params) == 1 short-circuits to that candidate.
//   - A round that hides nothing (tiny inputs) is skipped; if no round
//     scores anything, the first candidate wins by default.
//   - If every candidate fails every round, the last solver error surfaces.
//
// Complexity: rounds × len(params) solver calls plus O(n·p) bookkeeping.
func crossValidate(Xna *mat.Dense, params []float64, rounds int, holdFraction float64, rng *rand.Rand, solve cvSolver) (float64, error) {
	if len(params) == 1 || rounds < 1 {
		return params[0], nil
	}

	_, c := Xna.Dims()
	totals := make([]float64, len(params))
	scored := false
	var lastErr error

	for round := 0; round < rounds; round++ {
		Xcv, hidden := hideObserved(Xna, holdFraction, rng)
		if len(hidden) == 0 {
			continue
		}
		for pi, param := range params {
			Z, err := solve(Xcv, param)
			if err != nil {
				totals[pi] = math.Inf(1)
				lastErr = err
				continue
			}
			sse := 0.0
			for _, cell := range hidden {
				d := Z.At(cell/c, cell%c) - Xna.At(cell/c, cell%c)
				sse += d * d
			}
			totals[pi] += math.Sqrt(sse / float64(len(hidden)))
			scored = true
		}
	}

	if !scored {
		if lastErr != nil {
			return 0, lastErr
		}
		return params[0], nil
	}

	best := 0
	for pi := range params {
		if totals[pi] < totals[best] {
			best = pi
		}
	}
	return params[best], nil
}

// hideObserved clones Xna and replaces ≈ fraction of its observed entries
// with NaN, returning the flat indexes of the hidden cells. A column's last
// observed entry is never hidden, mirroring the amputation guard.
func hideObserved(Xna *mat.Dense, fraction float64, rng *rand.Rand) (*mat.Dense, []int) {
	r, c := Xna.Dims()
	observedPerCol := make([]int, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !math.IsNaN(Xna.At(i, j)) {
				observedPerCol[j]++
			}
		}
	}

	out := mat.DenseCopyOf(Xna)
	hidden := make([]int, 0, int(fraction*float64(r*c))+1)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if math.IsNaN(Xna.At(i, j)) || observedPerCol[j] <= 1 {
				continue
			}
			if rng.Float64() < fraction {
				out.Set(i, j, math.NaN())
				observedPerCol[j]--
				hidden = append(hidden, i*c+j)
			}
		}
	}
	return out, hidden
}
