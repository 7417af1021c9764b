package chart

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"agriexplorer/internal/explorer"
)

// Lines draws one total-output line per country.
func Lines(c explorer.Comparison) (*plot.Plot, error) {
	if len(c.Series) == 0 {
		return nil, errors.Errorf("comparison has no countries")
	}
	p := newPlot(c.Title(), "Year", "Total _output_")
	p.Legend.Top = true
	p.Legend.Left = true

	for i, s := range c.Series {
		points := make(plotter.XYs, len(s.Years))
		for k, year := range s.Years {
			points[k].X = float64(year)
			points[k].Y = s.Totals[k]
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(s.Country, line)
	}

	p.Add(plotter.NewGrid())
	return p, nil
}
