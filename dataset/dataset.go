package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an n×p numeric table: rows are observations, columns are named
// variables. A Dataset is fully observed by construction; amputation happens
// downstream and never mutates the original.
type Dataset struct {
	names []string
	m     *mat.Dense
}

// New wraps names and m into a Dataset after validating the invariants:
// m non-nil, n ≥ 1, p ≥ 1, len(names) == p, every entry finite.
//
// The names are copied, so the caller keeps ownership of its slice. The
// matrix is not; callers that keep mutating m should pass a clone.
func New(names []string, m *mat.Dense) (*Dataset, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyDataset
	}
	if len(names) != c {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrNameCount, len(names), c)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrNonFinite, i, j)
			}
		}
	}
	owned := make([]string, len(names))
	copy(owned, names)
	return &Dataset{names: owned, m: m}, nil
}

// Dims returns (rows, columns).
func (d *Dataset) Dims() (int, int) { return d.m.Dims() }

// Names returns a copy of the column names.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Matrix returns the backing matrix. The Dataset invariant assumes callers
// treat it as read-only; use Clone for a private mutable copy.
func (d *Dataset) Matrix() *mat.Dense { return d.m }

// Clone returns an independent deep copy of the backing matrix.
func (d *Dataset) Clone() *mat.Dense {
	out := mat.DenseCopyOf(d.m)
	return out
}

// Standardized returns a new Dataset with every column scaled to zero mean
// and unit standard deviation, plus the per-column scales needed to undo it.
func (d *Dataset) Standardized() (*Dataset, []ColumnScale, error) {
	z, scales, err := Standardize(d.m)
	if err != nil {
		return nil, nil, err
	}
	out := &Dataset{names: d.Names(), m: z}
	return out, scales, nil
}
