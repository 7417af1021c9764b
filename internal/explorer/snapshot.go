package explorer

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"agriexplorer/internal/dataset"
)

const (
	FertilizerColumn   = "fertilizer_quantity"
	OutputColumn       = "output_quantity"
	AnimalOutputColumn = "animal_output_quantity"

	// Marker areas in square points.
	MinBubbleArea = 20.0
	MaxBubbleArea = 400.0
)

type BubblePoint struct {
	Country string
	X       float64
	Y       float64
	Size    float64
	// Area is Size scaled into [MinBubbleArea, MaxBubbleArea].
	Area float64
}

// Snapshot is one year of the gapminder-style bubble chart.
type Snapshot struct {
	Year       int
	XColumn    string
	YColumn    string
	SizeColumn string
	Points     []BubblePoint
}

// ParseYear reads a year from user input.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "year %q is not an integer", s)
	}
	if year < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "year %d is negative", year)
	}
	return year, nil
}

// YearSnapshot plots fertilizer use against output for one year, with the
// bubble size taken from animal output. Animal output is the measure that
// correlates best with the other two.
func (e *Explorer) YearSnapshot(ctx context.Context, year int) (Snapshot, error) {
	if year < 0 {
		return Snapshot{}, errors.Wrapf(ErrInvalidArgument, "year %d is negative", year)
	}
	df, err := e.table(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	for _, col := range []string{FertilizerColumn, OutputColumn, AnimalOutputColumn} {
		if !dataset.HasColumn(df, col) {
			return Snapshot{}, errors.Wrapf(ErrConfiguration, "column %q", col)
		}
	}
	if !hasYear(df, year) {
		return Snapshot{}, errors.Wrapf(ErrNotFound, "year %d", year)
	}

	rows := df.Filter(dataframe.F{
		Colname:    dataset.YearColumn,
		Comparator: series.Eq,
		Comparando: year,
	})
	countries := rows.Col(dataset.EntityColumn).Records()
	xs := rows.Col(FertilizerColumn).Float()
	ys := rows.Col(OutputColumn).Float()
	sizes := rows.Col(AnimalOutputColumn).Float()

	snap := Snapshot{
		Year:       year,
		XColumn:    FertilizerColumn,
		YColumn:    OutputColumn,
		SizeColumn: AnimalOutputColumn,
	}
	for i := range countries {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		snap.Points = append(snap.Points, BubblePoint{
			Country: countries[i],
			X:       xs[i],
			Y:       ys[i],
			Size:    sizes[i],
		})
	}
	scaleAreas(snap.Points)
	return snap, nil
}

func hasYear(df dataframe.DataFrame, year int) bool {
	for _, y := range df.Col(dataset.YearColumn).Float() {
		if !math.IsNaN(y) && int(y) == year {
			return true
		}
	}
	return false
}

// scaleAreas maps Size linearly onto the marker area range. Missing sizes and
// a constant size get the smallest marker.
func scaleAreas(points []BubblePoint) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.Size) {
			continue
		}
		lo = math.Min(lo, p.Size)
		hi = math.Max(hi, p.Size)
	}
	for i := range points {
		s := points[i].Size
		switch {
		case math.IsNaN(s) || hi <= lo:
			points[i].Area = MinBubbleArea
		default:
			points[i].Area = MinBubbleArea + (s-lo)/(hi-lo)*(MaxBubbleArea-MinBubbleArea)
		}
	}
}
