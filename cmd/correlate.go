package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"agriexplorer/internal/chart"
)

func newCorrelateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "correlate",
		Short: "Correlate the _quantity columns and draw a heatmap.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.explorer.QuantityCorrelation(cmd.Context())
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			table.Header(append([]string{""}, m.Columns...))
			for i, col := range m.Columns {
				row := []string{col}
				for _, v := range m.Values[i] {
					if math.IsNaN(v) {
						row = append(row, "n/a")
						continue
					}
					row = append(row, fmt.Sprintf("%.2f", v))
				}
				table.Append(row)
			}
			table.Render()

			return a.render(cmd, "correlation.png", func() (*plot.Plot, error) {
				return chart.Heatmap(m)
			})
		},
	}
}
