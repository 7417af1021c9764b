package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"agriexplorer/internal/export"
)

func newReportCmd(a *app) *cobra.Command {
	var countries []string

	cmd := &cobra.Command{
		Use:   "report <file.md>",
		Short: "Write a markdown summary of the dataset.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.collect(cmd.Context(), countries)
			if err != nil {
				return err
			}

			path := args[0]
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.Wrapf(err, "creating %s", dir)
				}
			}
			f, err := os.Create(path)
			if err != nil {
				return errors.Wrapf(err, "creating %s", path)
			}
			defer f.Close()

			if err := export.WriteReport(f, d, time.Now()); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrapf(err, "closing %s", path)
			}
			a.log.WithField("path", path).Info("report saved")
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&countries, "country", "c", nil,
		"Countries to include in the trend analysis")
	return cmd
}
