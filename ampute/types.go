package ampute

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilMatrix is returned when the input matrix is nil.
var ErrNilMatrix = errors.New("ampute: nil matrix")

// ErrEmptyMatrix is returned when the input matrix has no rows or columns.
var ErrEmptyMatrix = errors.New("ampute: empty matrix")

// ErrBadFraction is returned when the missing fraction is outside (0,1).
var ErrBadFraction = errors.New("ampute: fraction must lie in (0,1)")

// ErrTooFewColumns is returned when MAR is requested on a single-column
// matrix: MAR needs one fully observed driver plus at least one target.
var ErrTooFewColumns = errors.New("ampute: MAR requires at least two columns")

// ErrUnknownMechanism is returned for Mechanism values outside the enum.
var ErrUnknownMechanism = errors.New("ampute: unknown mechanism")

// Mechanism selects how removal probabilities relate to the data.
//
//   - MCAR — Missing Completely At Random: independent of all values.
//   - MAR  — Missing At Random: depends only on observed (driver) values.
//   - MNAR — Missing Not At Random: depends on the removed value itself.
type Mechanism int

const (
	// MCAR removes each entry independently of every value.
	MCAR Mechanism = iota

	// MAR conditions removal on fully observed driver columns.
	MAR

	// MNAR conditions removal on the value being removed.
	MNAR
)

// String implements fmt.Stringer with the conventional acronyms.
func (m Mechanism) String() string {
	switch m {
	case MCAR:
		return "MCAR"
	case MAR:
		return "MAR"
	case MNAR:
		return "MNAR"
	default:
		return fmt.Sprintf("Mechanism(%d)", int(m))
	}
}

// Valid reports whether m is one of the three defined mechanisms.
func (m Mechanism) Valid() bool { return m == MCAR || m == MAR || m == MNAR }

// ParseMechanism converts an acronym (case-insensitive) to a Mechanism.
func ParseMechanism(s string) (Mechanism, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MCAR":
		return MCAR, nil
	case "MAR":
		return MAR, nil
	case "MNAR":
		return MNAR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMechanism, s)
	}
}

// Mechanisms returns all mechanisms in their canonical reporting order.
func Mechanisms() []Mechanism { return []Mechanism{MCAR, MAR, MNAR} }

// Mask is an n×p boolean matrix; true marks an artificially removed entry.
// The zero value is unusable; obtain masks from Amputate or NewMask.
type Mask struct {
	rows, cols int
	cells      []bool
}

// NewMask returns an all-false mask of the given shape.
func NewMask(rows, cols int) *Mask {
	return &Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Dims returns (rows, columns).
func (m *Mask) Dims() (int, int) { return m.rows, m.cols }

// At reports whether entry (i,j) was removed.
func (m *Mask) At(i, j int) bool { return m.cells[i*m.cols+j] }

// Set marks or clears entry (i,j). Useful for building masks by hand when
// scoring imputations against a known ground truth.
func (m *Mask) Set(i, j int, removed bool) { m.cells[i*m.cols+j] = removed }

// Count returns the number of removed entries.
func (m *Mask) Count() int {
	n := 0
	for _, removed := range m.cells {
		if removed {
			n++
		}
	}
	return n
}

// Density returns Count divided by the number of entries.
func (m *Mask) Density() float64 {
	if len(m.cells) == 0 {
		return 0
	}
	return float64(m.Count()) / float64(len(m.cells))
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	out := NewMask(m.rows, m.cols)
	copy(out.cells, m.cells)
	return out
}

// Options configures Amputate.
//
// Fields:
//   - Seed — RNG seed; 0 selects a fixed default so the default
//     configuration is reproducible (same policy as the rest of the module).
type Options struct {
	Seed int64
}

// DefaultOptions returns the reproducible default configuration.
func DefaultOptions() Options { return Options{} }
