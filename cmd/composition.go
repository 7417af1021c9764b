package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"agriexplorer/internal/chart"
)

func newCompositionCmd(a *app) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "composition [country]",
		Short: "Draw a stacked area chart of the _output_ columns for a country or the World.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := ""
			if len(args) == 1 {
				country = args[0]
			}
			comp, err := a.explorer.OutputComposition(cmd.Context(), country, normalize)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			table.Header(append([]string{"Year"}, comp.Columns...))
			for i, year := range comp.Years {
				row := []string{strconv.Itoa(year)}
				for _, col := range comp.Columns {
					row = append(row, fmt.Sprintf("%.2f", comp.Values[col][i]))
				}
				table.Append(row)
			}
			table.Render()

			name := "composition_" + slug(comp.Country)
			if comp.Normalized {
				name += "_normalized"
			}
			return a.render(cmd, name+".png", func() (*plot.Plot, error) {
				return chart.StackedArea(comp)
			})
		},
	}
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false,
		"Show each output as a percentage of the yearly total")
	return cmd
}

