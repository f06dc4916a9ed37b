package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/imputelab/bench"
)

// WriteCSV emits the result table in machine-readable long-ish form: a
// header of "method,<fraction/mechanism>..." followed by one row per method.
// NaN cells are written literally as "NaN" so spreadsheet tools keep them
// distinguishable from zero.
func WriteCSV(w io.Writer, res *bench.Result) error {
	cw := csv.NewWriter(w)

	cells := res.Cells()
	header := make([]string, 0, len(cells)+1)
	header = append(header, "method")
	for _, c := range cells {
		header = append(header, c.String())
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}

	for mi, name := range res.Methods() {
		row := make([]string, 0, len(cells)+1)
		row = append(row, name)
		for ci := range cells {
			row = append(row, strconv.FormatFloat(res.Value(ci, mi), 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write csv row %q: %w", name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}
	return nil
}
