package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries and regions in the dataset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := a.explorer.Countries(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range countries {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
