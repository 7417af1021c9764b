package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"agriexplorer/internal/chart"
	"agriexplorer/internal/explorer"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <country>...",
		Short: "Compare the total output of one or more countries over time.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := a.explorer.CountryTotals(cmd.Context(), args...)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			table.Header([]string{"Country", "Period", "Growth (%)", "Annual (%)", "Peak", "Volatility", "Trend"})
			for _, s := range cmp.Series {
				t := explorer.NewTrend(s)
				table.Append([]string{
					t.Country,
					fmt.Sprintf("%d-%d", t.FirstYear, t.LastYear),
					fmt.Sprintf("%.1f", t.GrowthRate),
					fmt.Sprintf("%.2f", t.AnnualGrowthRate),
					strconv.Itoa(t.PeakYear),
					fmt.Sprintf("%.2f", t.Volatility),
					t.Label,
				})
			}
			table.Render()

			return a.render(cmd, "compare.png", func() (*plot.Plot, error) {
				return chart.Lines(cmp)
			})
		},
	}
}
