package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"agriexplorer/internal/explorer"
)

// WriteReport renders d as a markdown summary.
func WriteReport(w io.Writer, d Data, generated time.Time) error {
	var b strings.Builder

	b.WriteString("# AGRICULTURAL TOTAL FACTOR PRODUCTIVITY\n")
	b.WriteString("## Output and input summary (USDA)\n\n")
	b.WriteString("### 📊 EXECUTIVE SUMMARY\n\n")
	fmt.Fprintf(&b, "- **Countries and regions analyzed**: %d\n", len(d.Countries))

	world, hasWorld := worldComposition(d.Compositions)
	if hasWorld && len(world.Years) > 0 {
		totals := world.Totals()
		first, last := 0, len(world.Years)-1
		fmt.Fprintf(&b, "- **Years covered**: %d-%d\n", world.Years[first], world.Years[last])
		fmt.Fprintf(&b, "- **Total output %d**: %s\n", world.Years[first], formatNumber(totals[first]))
		fmt.Fprintf(&b, "- **Total output %d**: %s\n", world.Years[last], formatNumber(totals[last]))
		if totals[first] > 0 {
			growth := (totals[last] - totals[first]) / totals[first] * 100
			fmt.Fprintf(&b, "- **Total growth**: %.1f%%\n", growth)
		}

		b.WriteString("\n### 🌾 OUTPUT COMPOSITION, LATEST YEAR\n\n")
		b.WriteString("| Output | Value | Share |\n")
		b.WriteString("|--------|-------|-------|\n")
		for _, col := range world.Columns {
			v := world.Values[col][last]
			share := 0.0
			if totals[last] != 0 {
				share = v / totals[last] * 100
			}
			fmt.Fprintf(&b, "| %s | %s | %.1f%% |\n", col, formatNumber(v), share)
		}
	}

	if m := d.Correlation; len(m.Columns) > 0 {
		b.WriteString("\n### 🔗 CORRELATION BETWEEN QUANTITY COLUMNS\n\n")
		b.WriteString("| |")
		for _, c := range m.Columns {
			fmt.Fprintf(&b, " %s |", c)
		}
		b.WriteString("\n|---|")
		b.WriteString(strings.Repeat("---|", len(m.Columns)))
		b.WriteString("\n")
		for i, c := range m.Columns {
			fmt.Fprintf(&b, "| %s |", c)
			for _, v := range m.Values[i] {
				if math.IsNaN(v) {
					b.WriteString(" n/a |")
				} else {
					fmt.Fprintf(&b, " %.2f |", v)
				}
			}
			b.WriteString("\n")
		}
	}

	if trends := d.Trends(); len(trends) > 0 {
		b.WriteString("\n### 📈 TOTAL OUTPUT TRENDS\n\n")
		b.WriteString("| Country | Period | Growth | Annual | Peak | Volatility | Trend |\n")
		b.WriteString("|---------|--------|--------|--------|------|------------|-------|\n")
		for _, t := range trends {
			fmt.Fprintf(&b, "| %s | %d-%d | %.1f%% | %.2f%% | %d (%s) | %.2f | %s |\n",
				t.Country, t.FirstYear, t.LastYear, t.GrowthRate, t.AnnualGrowthRate,
				t.PeakYear, formatNumber(t.PeakTotal), t.Volatility, t.Label)
		}
	}

	fmt.Fprintf(&b, "\n---\n*Generated by agriexplorer - %s*\n", generated.Format("2 January 2006"))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "writing report")
	}
	return nil
}

func worldComposition(comps []explorer.Composition) (explorer.Composition, bool) {
	for _, c := range comps {
		if c.Country == explorer.World && !c.Normalized {
			return c, true
		}
	}
	return explorer.Composition{}, false
}
