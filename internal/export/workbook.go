package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"agriexplorer/internal/explorer"
)

const maxSheetName = 31

// WriteWorkbook saves d as an xlsx file with one sheet per view.
func WriteWorkbook(path string, d Data) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	w := &workbook{f: f, used: make(map[string]bool)}
	w.countries(d.Countries)
	if len(d.Correlation.Columns) > 0 {
		w.correlation(d.Correlation)
	}
	for _, c := range d.Compositions {
		w.composition(c)
	}
	if len(d.Comparison.Series) > 0 {
		w.totals(d.Comparison)
		w.trends(d.Trends())
	}
	if w.err != nil {
		return w.err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "saving workbook %s", path)
	}
	return nil
}

// workbook keeps the first error so sheet writers can stay linear.
type workbook struct {
	f    *excelize.File
	used map[string]bool
	err  error
}

func (w *workbook) sheet(name string) string {
	name = sheetName(name)
	base := name
	for i := 2; w.used[name]; i++ {
		suffix := fmt.Sprintf(" %d", i)
		name = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	w.used[name] = true

	if len(w.used) == 1 {
		w.check(w.f.SetSheetName("Sheet1", name))
		return name
	}
	_, err := w.f.NewSheet(name)
	w.check(err)
	return name
}

func (w *workbook) row(sheet string, row int, values ...interface{}) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.check(err)
		return
	}
	w.check(w.f.SetSheetRow(sheet, cell, &values))
}

func (w *workbook) width(sheet string, cols int, width float64) {
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		w.check(err)
		return
	}
	w.check(w.f.SetColWidth(sheet, "A", last, width))
}

func (w *workbook) check(err error) {
	if err != nil && w.err == nil {
		w.err = errors.Wrap(err, "writing workbook")
	}
}

func (w *workbook) countries(countries []string) {
	sheet := w.sheet("Countries")
	w.row(sheet, 1, "Country")
	for i, c := range countries {
		w.row(sheet, i+2, c)
	}
	w.width(sheet, 1, 32)
}

func (w *workbook) correlation(m explorer.CorrelationMatrix) {
	sheet := w.sheet("Correlation")
	header := []interface{}{""}
	for _, c := range m.Columns {
		header = append(header, c)
	}
	w.row(sheet, 1, header...)
	for i, c := range m.Columns {
		values := []interface{}{c}
		for _, v := range m.Values[i] {
			values = append(values, cellValue(v))
		}
		w.row(sheet, i+2, values...)
	}
	w.width(sheet, len(m.Columns)+1, 24)
}

func (w *workbook) composition(c explorer.Composition) {
	name := c.Country
	if c.Normalized {
		name += " %"
	}
	sheet := w.sheet(name)
	header := []interface{}{"Year"}
	for _, col := range c.Columns {
		header = append(header, col)
	}
	w.row(sheet, 1, header...)
	for i, year := range c.Years {
		values := []interface{}{year}
		for _, col := range c.Columns {
			values = append(values, cellValue(c.Values[col][i]))
		}
		w.row(sheet, i+2, values...)
	}
	w.width(sheet, len(c.Columns)+1, 24)
}

func (w *workbook) totals(cmp explorer.Comparison) {
	sheet := w.sheet("Totals")
	header := []interface{}{"Year"}
	seen := make(map[int]bool)
	var years []int
	for _, s := range cmp.Series {
		header = append(header, s.Country)
		for _, y := range s.Years {
			if !seen[y] {
				seen[y] = true
				years = append(years, y)
			}
		}
	}
	sort.Ints(years)
	w.row(sheet, 1, header...)

	for i, year := range years {
		values := []interface{}{year}
		for _, s := range cmp.Series {
			values = append(values, totalFor(s, year))
		}
		w.row(sheet, i+2, values...)
	}
	w.width(sheet, len(cmp.Series)+1, 18)
}

func (w *workbook) trends(trends []explorer.Trend) {
	sheet := w.sheet("Trends")
	w.row(sheet, 1, "Country", "First Year", "Last Year", "Growth (%)",
		"Annual Growth (%)", "Peak Year", "Peak Total", "Volatility", "Trend")
	for i, t := range trends {
		w.row(sheet, i+2, t.Country, t.FirstYear, t.LastYear,
			round(t.GrowthRate, 1), round(t.AnnualGrowthRate, 2),
			t.PeakYear, t.PeakTotal, round(t.Volatility, 2), t.Label)
	}
	w.width(sheet, 9, 18)
}

func totalFor(s explorer.CountrySeries, year int) interface{} {
	for i, y := range s.Years {
		if y == year {
			return cellValue(s.Totals[i])
		}
	}
	return ""
}

// cellValue keeps NaN out of numeric cells.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return v
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
