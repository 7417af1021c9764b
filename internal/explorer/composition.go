package explorer

import (
	"context"

	"github.com/pkg/errors"

	"agriexplorer/internal/dataset"
)

// Composition is the per-year breakdown of output columns for one country,
// or for the World aggregate. Values[col][i] belongs to Years[i].
type Composition struct {
	Country    string
	Normalized bool
	Columns    []string
	Years      []int
	Values     map[string][]float64
}

// Totals sums the output columns for each year.
func (c Composition) Totals() []float64 {
	totals := make([]float64, len(c.Years))
	for _, col := range c.Columns {
		for i, v := range c.Values[col] {
			totals[i] += v
		}
	}
	return totals
}

// YLabel is the axis label matching the normalization flag.
func (c Composition) YLabel() string {
	if c.Normalized {
		return "Consumption % (Normalized)"
	}
	return "Consumption"
}

// normalize rescales each year so the columns add up to 100. Years with a
// zero total are left at zero.
func (c Composition) normalize() Composition {
	totals := c.Totals()
	values := make(map[string][]float64, len(c.Columns))
	for _, col := range c.Columns {
		scaled := make([]float64, len(c.Years))
		for i, v := range c.Values[col] {
			if totals[i] != 0 {
				scaled[i] = v / totals[i] * 100
			}
		}
		values[col] = scaled
	}
	c.Values = values
	c.Normalized = true
	return c
}

// OutputComposition breaks down the output columns over time. An empty
// country or World sums every row per year; any other name must match an
// entity exactly.
func (e *Explorer) OutputComposition(ctx context.Context, country string, normalize bool) (Composition, error) {
	if err := validateCountry(country); err != nil {
		return Composition{}, err
	}
	df, err := e.table(ctx)
	if err != nil {
		return Composition{}, err
	}

	cols := dataset.OutputColumns(df)
	if len(cols) < 2 {
		return Composition{}, errors.Wrapf(ErrConfiguration,
			"need at least two %s columns, found %d", dataset.OutputMarker, len(cols))
	}

	label := World
	rows := df
	if country != "" && country != World {
		if !countrySet(df)[country] {
			return Composition{}, errors.Wrapf(ErrNotFound, "country %q", country)
		}
		label = country
		rows = rowsOf(df, country)
	}

	years, values := yearly(rows, cols)
	comp := Composition{
		Country: label,
		Columns: cols,
		Years:   years,
		Values:  values,
	}
	if normalize {
		comp = comp.normalize()
	}
	return comp, nil
}
