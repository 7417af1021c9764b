// Package chart renders explorer views with gonum/plot.
package chart

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Size of a saved chart.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// Inches builds a Size from inch measurements.
func Inches(width, height float64) Size {
	return Size{Width: vg.Length(width) * vg.Inch, Height: vg.Length(height) * vg.Inch}
}

// Save writes p to path, creating the parent directory. The file format
// follows the extension (png, svg, pdf, ...).
func Save(p *plot.Plot, size Size, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating chart directory")
	}
	if err := p.Save(size.Width, size.Height, path); err != nil {
		return errors.Wrapf(err, "saving chart %s", path)
	}
	return nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}
