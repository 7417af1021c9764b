package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"agriexplorer/internal/explorer"
)

var bubbleColor = color.RGBA{R: 31, G: 119, B: 180, A: 128}

// Bubbles draws the year snapshot. Marker areas come from the snapshot; a
// glyph radius is half the side of a square of that area, matching how
// scatter marker sizes are usually given. A snapshot without points yields
// the labelled axes and grid alone.
func Bubbles(s explorer.Snapshot) (*plot.Plot, error) {
	for _, pt := range s.Points {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Area) || pt.Area < 0 {
			return nil, errors.Errorf("malformed point for %q in %d", pt.Country, s.Year)
		}
	}
	p := newPlot(fmt.Sprintf("Gapminder agriculture %d", s.Year), s.XColumn, s.YColumn)
	p.Add(plotter.NewGrid())
	if len(s.Points) == 0 {
		return p, nil
	}

	points := make(plotter.XYs, len(s.Points))
	radii := make([]vg.Length, len(s.Points))
	for i, pt := range s.Points {
		points[i].X = pt.X
		points[i].Y = pt.Y
		radii[i] = vg.Points(math.Sqrt(pt.Area) / 2)
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  bubbleColor,
			Radius: radii[i],
			Shape:  draw.CircleGlyph{},
		}
	}

	p.Add(scatter)
	return p, nil
}
