package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/imputelab/ampute"
)

// ErrNilMatrix is returned when the ground-truth matrix is nil.
var ErrNilMatrix = errors.New("bench: nil matrix")

// ErrEmptyMatrix is returned when the ground-truth matrix has no entries.
var ErrEmptyMatrix = errors.New("bench: empty matrix")

// ErrNonFinite is returned when the ground truth contains NaN or Inf; a
// benchmark needs complete data before amputation.
var ErrNonFinite = errors.New("bench: ground truth contains non-finite values")

// ErrNoImputers is returned when Run receives an empty method list.
var ErrNoImputers = errors.New("bench: no imputers")

// ErrDuplicateMethod is returned when two imputers share a name; table rows
// would collide.
var ErrDuplicateMethod = errors.New("bench: duplicate method name")

// ErrNoFractions is returned when the fraction list is empty.
var ErrNoFractions = errors.New("bench: no missingness fractions")

// ErrBadFraction is returned when a fraction lies outside (0,1).
var ErrBadFraction = errors.New("bench: fraction must lie in (0,1)")

// ErrNoMechanisms is returned when the mechanism list is empty.
var ErrNoMechanisms = errors.New("bench: no mechanisms")

// ErrBadRepetitions is returned when Repetitions < 1.
var ErrBadRepetitions = errors.New("bench: repetitions must be positive")

// ErrShapeMismatch is returned by RMSE when the matrices and mask disagree
// on dimensions.
var ErrShapeMismatch = errors.New("bench: shape mismatch")

// ErrEmptyMask is returned by RMSE when the mask selects no entries. The
// amputation guarantees this cannot happen inside Run; seeing it there is a
// fatal assertion, not a recoverable draw.
var ErrEmptyMask = errors.New("bench: empty mask")

// ErrUnknownCell is returned by Result lookups for cells outside the sweep.
var ErrUnknownCell = errors.New("bench: unknown cell")

// ErrUnknownMethod is returned by Result lookups for unknown method names.
var ErrUnknownMethod = errors.New("bench: unknown method")

// Cell identifies one column of the benchmark table: a missingness fraction
// paired with a mechanism.
type Cell struct {
	Fraction  float64
	Mechanism ampute.Mechanism
}

// String renders the conventional header form, e.g. "30%/MCAR".
func (c Cell) String() string {
	return fmt.Sprintf("%g%%/%s", c.Fraction*100, c.Mechanism)
}

// Options configures Run.
//
// Fields:
//   - Fractions   — missingness fractions, each in (0,1); sweep order is
//     the given order (deterministic reporting).
//   - Mechanisms  — mechanisms to cross with the fractions.
//   - Repetitions — independent amputation draws per cell (≥ 1).
//   - Seed        — base seed; every (cell, repetition) derives its own
//     stream from it. 0 selects a fixed default.
//   - Workers     — parallel cell executors; ≤ 1 means sequential. Purely
//     an optimization: the result table is identical either way.
//   - Logger      — optional progress/skip logging; nil disables it.
type Options struct {
	Fractions   []float64
	Mechanisms  []ampute.Mechanism
	Repetitions int
	Seed        int64
	Workers     int
	Logger      *slog.Logger
}

// DefaultOptions mirrors the classical teaching sweep: three fractions,
// all mechanisms, a handful of repetitions.
func DefaultOptions() Options {
	return Options{
		Fractions:   []float64{0.2, 0.5, 0.7},
		Mechanisms:  ampute.Mechanisms(),
		Repetitions: 5,
	}
}
