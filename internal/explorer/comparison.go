package explorer

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"agriexplorer/internal/dataset"
)

// CountrySeries is the yearly total output of one country.
type CountrySeries struct {
	Country string
	Years   []int
	Totals  []float64
}

type Comparison struct {
	Series []CountrySeries
}

func (c Comparison) Countries() []string {
	names := make([]string, len(c.Series))
	for i, s := range c.Series {
		names[i] = s.Country
	}
	return names
}

func (c Comparison) Title() string {
	return "Plot of total _output_ values of " + strings.Join(c.Countries(), ", ")
}

// CountryTotals computes the yearly sum of all output columns for each
// selected country, in selection order. Every name is checked before any
// total is computed.
func (e *Explorer) CountryTotals(ctx context.Context, selection ...string) (Comparison, error) {
	if len(selection) == 0 {
		return Comparison{}, errors.Wrap(ErrInvalidArgument, "no country selected")
	}
	for _, country := range selection {
		if country == "" {
			return Comparison{}, errors.Wrap(ErrInvalidArgument, "empty country name in selection")
		}
		if err := validateCountry(country); err != nil {
			return Comparison{}, err
		}
	}

	df, err := e.table(ctx)
	if err != nil {
		return Comparison{}, err
	}
	cols := dataset.OutputColumns(df)
	if len(cols) == 0 {
		return Comparison{}, errors.Wrapf(ErrConfiguration, "no %s columns", dataset.OutputMarker)
	}

	known := countrySet(df)
	for _, country := range selection {
		if !known[country] {
			return Comparison{}, errors.Wrapf(ErrNotFound, "country %q", country)
		}
	}

	cmp := Comparison{Series: make([]CountrySeries, 0, len(selection))}
	for _, country := range selection {
		years, values := yearly(rowsOf(df, country), cols)
		totals := make([]float64, len(years))
		for _, col := range cols {
			for i, v := range values[col] {
				totals[i] += v
			}
		}
		cmp.Series = append(cmp.Series, CountrySeries{
			Country: country,
			Years:   years,
			Totals:  totals,
		})
	}
	return cmp, nil
}
