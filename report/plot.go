package report

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/bench"
)

// PlotOptions configures SavePlots.
//
// Fields:
//   - Title  — chart title prefix; the mechanism acronym is appended.
//   - Width  — image width in inches (default 6).
//   - Height — image height in inches (default 4).
type PlotOptions struct {
	Title  string
	Width  float64
	Height float64
}

// DefaultPlotOptions returns the standard chart geometry.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Title: "Imputation error", Width: 6, Height: 4}
}

// SavePlots writes one PNG per mechanism present in the result: RMSE against
// missing fraction, one line-and-points series per method. NaN cells are
// dropped from their series rather than breaking the line at zero. Returns
// the written file paths in mechanism order.
func SavePlots(res *bench.Result, dir string, opts *PlotOptions) ([]string, error) {
	o := DefaultPlotOptions()
	if opts != nil {
		o = *opts
		if o.Width <= 0 {
			o.Width = 6
		}
		if o.Height <= 0 {
			o.Height = 4
		}
	}

	cells := res.Cells()
	methods := res.Methods()
	written := make([]string, 0, 3)

	for _, mech := range mechanismsOf(cells) {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s (%s)", o.Title, mech)
		p.X.Label.Text = "missing fraction"
		p.Y.Label.Text = "RMSE"
		p.Add(plotter.NewGrid())

		for mi, name := range methods {
			xys := make(plotter.XYs, 0, len(cells))
			for ci, cell := range cells {
				if cell.Mechanism != mech {
					continue
				}
				v := res.Value(ci, mi)
				if math.IsNaN(v) {
					continue
				}
				xys = append(xys, plotter.XY{X: cell.Fraction, Y: v})
			}
			if len(xys) == 0 {
				continue
			}

			line, points, err := plotter.NewLinePoints(xys)
			if err != nil {
				return written, fmt.Errorf("report: series %q (%s): %w", name, mech, err)
			}
			line.Color = plotutil.Color(mi)
			points.Color = plotutil.Color(mi)
			points.Shape = plotutil.Shape(mi)
			p.Add(line, points)
			p.Legend.Add(name, line, points)
		}
		p.Legend.Top = true

		path := filepath.Join(dir, fmt.Sprintf("rmse_%s.png", strings.ToLower(mech.String())))
		if err := p.Save(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch, path); err != nil {
			return written, fmt.Errorf("report: save %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// mechanismsOf lists the distinct mechanisms of the sweep in first-seen order.
func mechanismsOf(cells []bench.Cell) []ampute.Mechanism {
	seen := make(map[ampute.Mechanism]struct{}, 3)
	out := make([]ampute.Mechanism, 0, 3)
	for _, c := range cells {
		if _, ok := seen[c.Mechanism]; ok {
			continue
		}
		seen[c.Mechanism] = struct{}{}
		out = append(out, c.Mechanism)
	}
	return out
}
