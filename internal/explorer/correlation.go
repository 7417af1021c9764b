package explorer

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"agriexplorer/internal/dataset"
)

// CorrelationMatrix holds pairwise Pearson coefficients. Values[i][j] is the
// correlation between Columns[i] and Columns[j].
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

func (m CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, c := range m.Columns {
		if c == a {
			i = k
		}
		if c == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// QuantityCorrelation correlates every quantity column with every other.
func (e *Explorer) QuantityCorrelation(ctx context.Context) (CorrelationMatrix, error) {
	df, err := e.table(ctx)
	if err != nil {
		return CorrelationMatrix{}, err
	}
	cols := dataset.QuantityColumns(df)
	if len(cols) < 2 {
		return CorrelationMatrix{}, errors.Wrapf(ErrConfiguration,
			"need at least two %s columns, found %d", dataset.QuantitySuffix, len(cols))
	}

	data := make([][]float64, len(cols))
	for i, col := range cols {
		data[i] = df.Col(col).Float()
	}

	values := make([][]float64, len(cols))
	for i := range values {
		values[i] = make([]float64, len(cols))
	}
	for i := range cols {
		for j := i; j < len(cols); j++ {
			r := pearson(data[i], data[j])
			values[i][j] = r
			values[j][i] = r
		}
	}
	return CorrelationMatrix{Columns: cols, Values: values}, nil
}

// pearson uses only the rows where both values are present. Fewer than two
// such rows, or a constant column, give NaN.
func pearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
