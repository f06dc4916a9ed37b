package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/imputelab/bench"
)

// missingCellGlyph replaces NaN scores in the rendered table.
const missingCellGlyph = "—"

// Table renders the benchmark result as a bordered terminal table: one row
// per method, one column per (fraction, mechanism) cell, scores to four
// significant decimals.
func Table(res *bench.Result) string {
	cells := res.Cells()
	methods := res.Methods()

	headers := make([]string, 0, len(cells)+1)
	headers = append(headers, "method")
	for _, c := range cells {
		headers = append(headers, c.String())
	}

	rows := make([][]string, 0, len(methods))
	for mi, name := range methods {
		row := make([]string, 0, len(cells)+1)
		row = append(row, name)
		for ci := range cells {
			row = append(row, formatScore(res.Value(ci, mi)))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Right).PaddingLeft(1).PaddingRight(1)
	methodStyle := lipgloss.NewStyle().Align(lipgloss.Left).PaddingLeft(1).PaddingRight(1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return methodStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

// formatScore prints a score compactly, mapping NaN to the missing glyph.
func formatScore(v float64) string {
	if math.IsNaN(v) {
		return missingCellGlyph
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Summary returns a one-line per-cell digest naming the best method, handy
// for logs: "30%/MCAR: softimpute (0.4012)".
func Summary(res *bench.Result) []string {
	cells := res.Cells()
	methods := res.Methods()
	out := make([]string, 0, len(cells))
	for ci, cell := range cells {
		best, bestScore := "", math.Inf(1)
		for mi, name := range methods {
			if v := res.Value(ci, mi); !math.IsNaN(v) && v < bestScore {
				best, bestScore = name, v
			}
		}
		if best == "" {
			out = append(out, fmt.Sprintf("%s: no successful method", cell))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s (%.4f)", cell, best, bestScore))
	}
	return out
}
