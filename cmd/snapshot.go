package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"agriexplorer/internal/chart"
	"agriexplorer/internal/explorer"
)

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <year>",
		Short: "Draw the gapminder-style bubble chart for one year.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := explorer.ParseYear(args[0])
			if err != nil {
				return err
			}
			snap, err := a.explorer.YearSnapshot(cmd.Context(), year)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			table.Header([]string{"Country", snap.XColumn, snap.YColumn, snap.SizeColumn})
			for _, p := range snap.Points {
				table.Append([]string{
					p.Country,
					fmt.Sprintf("%.2f", p.X),
					fmt.Sprintf("%.2f", p.Y),
					fmt.Sprintf("%.2f", p.Size),
				})
			}
			table.Render()

			return a.render(cmd, fmt.Sprintf("snapshot_%d.png", year), func() (*plot.Plot, error) {
				return chart.Bubbles(snap)
			})
		},
	}
}
