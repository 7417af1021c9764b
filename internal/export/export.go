// Package export writes computed views to an xlsx workbook and a markdown
// report.
package export

import (
	"fmt"
	"math"

	"agriexplorer/internal/explorer"
)

// Data gathers the views that go into an export. Zero-valued parts are
// skipped.
type Data struct {
	Countries    []string
	Correlation  explorer.CorrelationMatrix
	Compositions []explorer.Composition
	Comparison   explorer.Comparison
}

// Trends derives the trend summary of every compared country.
func (d Data) Trends() []explorer.Trend {
	trends := make([]explorer.Trend, len(d.Comparison.Series))
	for i, s := range d.Comparison.Series {
		trends[i] = explorer.NewTrend(s)
	}
	return trends
}

func formatNumber(num float64) string {
	switch {
	case math.IsNaN(num):
		return "n/a"
	case math.Abs(num) >= 1000000:
		return fmt.Sprintf("%.2fM", num/1000000)
	case math.Abs(num) >= 1000:
		return fmt.Sprintf("%.1fK", num/1000)
	}
	return fmt.Sprintf("%.0f", num)
}
