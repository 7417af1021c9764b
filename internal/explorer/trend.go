package explorer

import (
	"gonum.org/v1/gonum/stat"
)

// Trend summarizes how a country's total output moved over the covered years.
type Trend struct {
	Country          string
	FirstYear        int
	LastYear         int
	FirstTotal       float64
	LastTotal        float64
	GrowthRate       float64
	AnnualGrowthRate float64
	PeakYear         int
	PeakTotal        float64
	Volatility       float64
	Label            string
}

func NewTrend(s CountrySeries) Trend {
	t := Trend{Country: s.Country, Label: "INSUFFICIENT_DATA"}
	if len(s.Years) == 0 {
		return t
	}

	last := len(s.Years) - 1
	t.FirstYear, t.LastYear = s.Years[0], s.Years[last]
	t.FirstTotal, t.LastTotal = s.Totals[0], s.Totals[last]
	t.PeakYear, t.PeakTotal = findPeak(s)

	if t.FirstTotal > 0 {
		t.GrowthRate = (t.LastTotal - t.FirstTotal) / t.FirstTotal * 100
		if span := t.LastYear - t.FirstYear; span > 0 {
			t.AnnualGrowthRate = t.GrowthRate / float64(span)
		}
	}
	t.Volatility = volatility(yearlyGrowthRates(s.Totals))
	t.Label = classify(t, len(s.Years))
	return t
}

// classify labels a trend. Growth needs four years and non-zero end totals.
func classify(t Trend, points int) string {
	if points < 4 {
		return "INSUFFICIENT_DATA"
	}
	if t.FirstTotal == 0 || t.LastTotal == 0 {
		return "INCOMPLETE_DATA"
	}

	switch {
	case t.GrowthRate > 500:
		return "EXPLOSIVE_GROWTH"
	case t.GrowthRate > 200:
		return "HIGH_GROWTH"
	case t.GrowthRate > 100:
		return "MODERATE_GROWTH"
	case t.GrowthRate > 50:
		return "STABLE_GROWTH"
	case t.GrowthRate < 0:
		return "DECLINING"
	case t.Volatility > 30:
		return "VOLATILE"
	}
	return "MATURE"
}

func findPeak(s CountrySeries) (int, float64) {
	peakYear, peakTotal := s.Years[0], s.Totals[0]
	for i, total := range s.Totals {
		if total > peakTotal {
			peakYear, peakTotal = s.Years[i], total
		}
	}
	return peakYear, peakTotal
}

// yearlyGrowthRates gives the percent change between consecutive totals,
// skipping steps that start from zero.
func yearlyGrowthRates(totals []float64) []float64 {
	var rates []float64
	for i := 1; i < len(totals); i++ {
		if totals[i-1] > 0 {
			rates = append(rates, (totals[i]-totals[i-1])/totals[i-1]*100)
		}
	}
	return rates
}

func volatility(growthRates []float64) float64 {
	if len(growthRates) == 0 {
		return 0
	}
	_, std := stat.PopMeanStdDev(growthRates, nil)
	return std
}
