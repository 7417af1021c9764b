package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"agriexplorer/internal/explorer"
	"agriexplorer/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var countries []string

	cmd := &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the computed views to an Excel workbook.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.collect(cmd.Context(), countries)
			if err != nil {
				return err
			}
			path := args[0]
			if err := export.WriteWorkbook(path, d); err != nil {
				return err
			}
			a.log.WithField("path", path).Info("workbook saved")
			fmt.Fprintf(cmd.OutOrStdout(), "workbook written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&countries, "country", "c", nil,
		"Countries to include in the totals and trends sheets")
	return cmd
}

// collect computes every view an export needs. Totals are only computed when
// countries are given.
func (a *app) collect(ctx context.Context, countries []string) (export.Data, error) {
	var d export.Data
	var err error

	if d.Countries, err = a.explorer.Countries(ctx); err != nil {
		return d, err
	}
	if d.Correlation, err = a.explorer.QuantityCorrelation(ctx); err != nil {
		return d, err
	}
	for _, normalize := range []bool{false, true} {
		comp, err := a.explorer.OutputComposition(ctx, explorer.World, normalize)
		if err != nil {
			return d, err
		}
		d.Compositions = append(d.Compositions, comp)
	}
	if len(countries) > 0 {
		if d.Comparison, err = a.explorer.CountryTotals(ctx, countries...); err != nil {
			return d, err
		}
	}
	return d, nil
}

