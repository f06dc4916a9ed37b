package bench

import "fmt"

// Result is the immutable outcome of one sweep: a method × cell table of
// averaged RMSE values. NaN marks a method that never succeeded in a cell.
type Result struct {
	methods []string
	cells   []Cell
	scores  [][]float64 // scores[cellIdx][methodIdx]
}

// Methods returns the method names in their benchmark (insertion) order.
func (r *Result) Methods() []string {
	out := make([]string, len(r.methods))
	copy(out, r.methods)
	return out
}

// Cells returns the sweep cells in deterministic fraction-major order.
func (r *Result) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Value returns the averaged score at (cell index, method index). Indexes
// follow Cells() and Methods().
func (r *Result) Value(cellIdx, methodIdx int) float64 {
	return r.scores[cellIdx][methodIdx]
}

// Score looks up the averaged score for a cell and a method by value.
func (r *Result) Score(cell Cell, method string) (float64, error) {
	ci := -1
	for idx, c := range r.cells {
		if c == cell {
			ci = idx
			break
		}
	}
	if ci < 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCell, cell)
	}
	for mi, name := range r.methods {
		if name == method {
			return r.scores[ci][mi], nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// Row returns one method's scores across all cells, in Cells() order.
func (r *Result) Row(method string) ([]float64, error) {
	for mi, name := range r.methods {
		if name != method {
			continue
		}
		out := make([]float64, len(r.cells))
		for ci := range r.cells {
			out[ci] = r.scores[ci][mi]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}
