package impute

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNilMatrix is returned when the input matrix is nil.
var ErrNilMatrix = errors.New("impute: nil matrix")

// ErrEmptyMatrix is returned when the input matrix has no rows or columns.
var ErrEmptyMatrix = errors.New("impute: empty matrix")

// ErrEmptyColumn is returned when a column has zero observed entries; no
// column statistic or regression target can be formed for it.
var ErrEmptyColumn = errors.New("impute: column has no observed values")

// ErrNoConvergence is returned when an iterative solver exhausts its
// iteration budget without meeting its tolerance. Recoverable: callers are
// expected to skip the draw rather than abort a sweep.
var ErrNoConvergence = errors.New("impute: no convergence")

// ErrBadOption is returned when an option value is outside its domain.
var ErrBadOption = errors.New("impute: invalid option")

// Imputer is the uniform capability every completion algorithm implements.
//
// Contract:
//   - Impute returns a matrix of the same shape with no NaN entries.
//   - Observed entries (non-NaN in Xna) are preserved bit-identically.
//   - Xna is never mutated; a fully observed Xna round-trips unchanged.
type Imputer interface {
	// Name identifies the method in benchmark tables.
	Name() string

	// Impute completes the NaN-marked matrix Xna.
	Impute(Xna *mat.Dense) (*mat.Dense, error)
}

// validateInput applies the shared nil/empty checks and returns the shape.
func validateInput(Xna *mat.Dense) (int, int, error) {
	if Xna == nil {
		return 0, 0, ErrNilMatrix
	}
	r, c := Xna.Dims()
	if r == 0 || c == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	return r, c, nil
}

// missingCells flattens the NaN pattern of Xna row-major and counts it.
func missingCells(Xna *mat.Dense) ([]bool, int) {
	r, c := Xna.Dims()
	cells := make([]bool, r*c)
	count := 0
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if math.IsNaN(Xna.At(i, j)) {
				cells[i*c+j] = true
				count++
			}
		}
	}
	return cells, count
}

// observedColumnMeans averages the observed entries of every column.
// A column with zero observed entries fails with a positioned ErrEmptyColumn.
func observedColumnMeans(Xna *mat.Dense) ([]float64, error) {
	r, c := Xna.Dims()
	means := make([]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		sum, n := 0.0, 0
		for i = 0; i < r; i++ {
			v := Xna.At(i, j)
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: column %d", ErrEmptyColumn, j)
		}
		means[j] = sum / float64(n)
	}
	return means, nil
}

// meanFilled clones Xna and replaces every NaN with its column's observed
// mean. The usual warm start for the iterative imputers.
func meanFilled(Xna *mat.Dense) (*mat.Dense, error) {
	means, err := observedColumnMeans(Xna)
	if err != nil {
		return nil, err
	}
	out := mat.DenseCopyOf(Xna)
	r, c := out.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if math.IsNaN(out.At(i, j)) {
				out.Set(i, j, means[j])
			}
		}
	}
	return out, nil
}

// restoreObserved overwrites Z's entries with Xna's wherever Xna is
// observed, enforcing the observed-value preservation contract exactly.
func restoreObserved(Z, Xna *mat.Dense) {
	r, c := Xna.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v := Xna.At(i, j); !math.IsNaN(v) {
				Z.Set(i, j, v)
			}
		}
	}
}

// relativeChange measures ‖A-B‖F / ‖A‖F, the convergence criterion shared
// by the iterative solvers. A zero-norm A with a different B reports +Inf.
func relativeChange(A, B *mat.Dense) float64 {
	var diff mat.Dense
	diff.Sub(A, B)
	num := mat.Norm(&diff, 2)
	den := mat.Norm(A, 2)
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return num / den
}
