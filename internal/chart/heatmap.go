package chart

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"agriexplorer/internal/explorer"
)

// matrixGrid lays the first column out on the top row, as correlation
// tables are usually read.
type matrixGrid struct {
	m explorer.CorrelationMatrix
}

func (g matrixGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g matrixGrid) Z(c, r int) float64 {
	return g.m.Values[len(g.m.Columns)-1-r][c]
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

// Heatmap draws the correlation matrix with each cell annotated.
func Heatmap(m explorer.CorrelationMatrix) (*plot.Plot, error) {
	n := len(m.Columns)
	if n == 0 {
		return nil, errors.Errorf("empty correlation matrix")
	}
	p := newPlot("Correlation between Quantity Columns", "", "")

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)
	h := plotter.NewHeatMap(matrixGrid{m: m}, colors.Palette(255))
	h.Min, h.Max = -1, 1
	p.Add(h)

	xys := make(plotter.XYs, 0, n*n)
	texts := make([]string, 0, n*n)
	for i := range m.Columns {
		for j := range m.Columns {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			v := m.Values[i][j]
			if math.IsNaN(v) {
				texts = append(texts, "n/a")
			} else {
				texts = append(texts, fmt.Sprintf("%.2f", v))
			}
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, col := range m.Columns {
		xTicks[i] = plot.Tick{Value: float64(i), Label: col}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: col}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}
