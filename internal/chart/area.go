package chart

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"agriexplorer/internal/explorer"
)

// StackedArea draws one band per output column, stacked in column order.
func StackedArea(c explorer.Composition) (*plot.Plot, error) {
	if len(c.Years) == 0 {
		return nil, errors.Errorf("composition for %s has no years", c.Country)
	}
	title := "Consumption of agricultural products by country over time"
	if c.Country != "" {
		title += " (" + c.Country + ")"
	}
	p := newPlot(title, "Year", c.YLabel())
	p.Legend.Top = true
	p.Legend.Left = true

	lower := make([]float64, len(c.Years))
	for i, col := range c.Columns {
		upper := make([]float64, len(c.Years))
		for k := range c.Years {
			upper[k] = lower[k] + c.Values[col][k]
		}

		band := make(plotter.XYs, 0, 2*len(c.Years))
		for k, year := range c.Years {
			band = append(band, plotter.XY{X: float64(year), Y: upper[k]})
		}
		for k := len(c.Years) - 1; k >= 0; k-- {
			band = append(band, plotter.XY{X: float64(c.Years[k]), Y: lower[k]})
		}

		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, err
		}
		poly.Color = plotutil.Color(i)
		poly.LineStyle.Width = 0
		p.Add(poly)
		p.Legend.Add(col, poly)

		lower = upper
	}

	p.Add(plotter.NewGrid())
	p.Y.Min = 0
	return p, nil
}
