package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"

	"agriexplorer/internal/explorer"
)

var matrix = explorer.CorrelationMatrix{
	Columns: []string{"output_quantity", "labor_quantity", "fertilizer_quantity"},
	Values: [][]float64{
		{1, 0.4, 0.9},
		{0.4, 1, math.NaN()},
		{0.9, math.NaN(), 1},
	},
}

var composition = explorer.Composition{
	Country: "Peru",
	Columns: []string{"crop_output_quantity", "animal_output_quantity"},
	Years:   []int{2000, 2001, 2002},
	Values: map[string][]float64{
		"crop_output_quantity":   {12, 13, 15},
		"animal_output_quantity": {6, 7, 8},
	},
}

var comparison = explorer.Comparison{Series: []explorer.CountrySeries{
	{Country: "Chad", Years: []int{2000, 2001}, Totals: []float64{10, 12}},
	{Country: "Peru", Years: []int{2000, 2001}, Totals: []float64{20, 22}},
}}

var snapshot = explorer.Snapshot{
	Year:       2001,
	XColumn:    explorer.FertilizerColumn,
	YColumn:    explorer.OutputColumn,
	SizeColumn: explorer.AnimalOutputColumn,
	Points: []explorer.BubblePoint{
		{Country: "Chad", X: 2, Y: 12, Size: 4, Area: explorer.MinBubbleArea},
		{Country: "Peru", X: 3, Y: 22, Size: 7, Area: 53.5},
		{Country: "United States", X: 21, Y: 105, Size: 38, Area: explorer.MaxBubbleArea},
	},
}

func saveAndCheck(t *testing.T, p *plot.Plot, name string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts", name)
	if err := Save(p, Inches(6, 4), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("expected %s to have content", name)
	}
}

func TestHeatmap(t *testing.T) {
	p, err := Heatmap(matrix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title.Text != "Correlation between Quantity Columns" {
		t.Errorf("unexpected title %q", p.Title.Text)
	}
	saveAndCheck(t, p, "correlation.png")

	if _, err := Heatmap(explorer.CorrelationMatrix{}); err == nil {
		t.Error("expected error for empty matrix, but got nil")
	}
}

func TestMatrixGrid(t *testing.T) {
	g := matrixGrid{m: matrix}
	c, r := g.Dims()
	if c != 3 || r != 3 {
		t.Fatalf("expected 3x3, but got %dx%d", c, r)
	}
	// top row holds the first column's correlations
	if got := g.Z(2, 2); got != 0.9 {
		t.Errorf("expected 0.9, but got %v", got)
	}
	if got := g.Z(1, 0); !math.IsNaN(got) {
		t.Errorf("expected NaN, but got %v", got)
	}
}

func TestStackedArea(t *testing.T) {
	p, err := StackedArea(composition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Y.Label.Text != "Consumption" {
		t.Errorf("unexpected y label %q", p.Y.Label.Text)
	}
	if p.Y.Min != 0 {
		t.Errorf("expected y axis to start at 0, but got %v", p.Y.Min)
	}
	if p.Y.Max < 23 {
		t.Errorf("expected y axis to reach the stacked top 23, but got %v", p.Y.Max)
	}
	saveAndCheck(t, p, "composition.png")

	normalized := composition
	normalized.Normalized = true
	p, err = StackedArea(normalized)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Y.Label.Text != "Consumption % (Normalized)" {
		t.Errorf("unexpected y label %q", p.Y.Label.Text)
	}

	if _, err := StackedArea(explorer.Composition{Country: "Chad"}); err == nil {
		t.Error("expected error for empty composition, but got nil")
	}
}

func TestLines(t *testing.T) {
	p, err := Lines(comparison)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title.Text != "Plot of total _output_ values of Chad, Peru" {
		t.Errorf("unexpected title %q", p.Title.Text)
	}
	saveAndCheck(t, p, "compare.svg")

	if _, err := Lines(explorer.Comparison{}); err == nil {
		t.Error("expected error for empty comparison, but got nil")
	}
}

func TestBubbles(t *testing.T) {
	p, err := Bubbles(snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X.Label.Text != explorer.FertilizerColumn || p.Y.Label.Text != explorer.OutputColumn {
		t.Errorf("unexpected axis labels %q %q", p.X.Label.Text, p.Y.Label.Text)
	}
	saveAndCheck(t, p, "snapshot.png")

	bad := explorer.Snapshot{Year: 1900, Points: []explorer.BubblePoint{{Country: "Chad", X: math.NaN(), Y: 1, Area: 20}}}
	if _, err := Bubbles(bad); err == nil {
		t.Error("expected error for a point without coordinates, but got nil")
	}
}

func TestBubbles_NoPoints(t *testing.T) {
	empty := explorer.Snapshot{
		Year:       1961,
		XColumn:    explorer.FertilizerColumn,
		YColumn:    explorer.OutputColumn,
		SizeColumn: explorer.AnimalOutputColumn,
	}
	p, err := Bubbles(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title.Text != "Gapminder agriculture 1961" {
		t.Errorf("unexpected title %q", p.Title.Text)
	}
	if p.X.Label.Text != explorer.FertilizerColumn {
		t.Errorf("unexpected x label %q", p.X.Label.Text)
	}
	saveAndCheck(t, p, "empty.png")
}
