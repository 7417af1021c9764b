package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"

	"agriexplorer/internal/chart"
	"agriexplorer/internal/config"
	"agriexplorer/internal/dataset"
	"agriexplorer/internal/explorer"
	"agriexplorer/internal/fetch"
	"agriexplorer/internal/logger"
)

// app is what every subcommand works with once the root has loaded the
// configuration.
type app struct {
	v        *viper.Viper
	cfgFile  string
	verbose  bool
	cfg      config.Cfg
	log      *logrus.Logger
	explorer *explorer.Explorer
}

func newRootCmd() *cobra.Command {
	return newRoot(&app{v: config.New()})
}

func newRoot(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "agriexplorer",
		Short:         "Explore the USDA agricultural total factor productivity dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Path to a config file (json, yaml or toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("source-url", config.DefaultSourceURL, "URL of the source CSV (http, https or s3)")
	flags.String("cache-dir", "downloads", "Directory holding the cached data file")
	flags.String("out-dir", "charts", "Directory charts are written to")
	flags.Duration("timeout", 60*time.Second, "Download timeout")

	for key, flag := range map[string]string{
		"source_url": "source-url",
		"cache_dir":  "cache-dir",
		"output_dir": "out-dir",
		"timeout":    "timeout",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newCountriesCmd(a),
		newCorrelateCmd(a),
		newCompositionCmd(a),
		newCompareCmd(a),
		newSnapshotCmd(a),
		newExportCmd(a),
		newReportCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logger, cmd.ErrOrStderr())
	if a.verbose {
		log.Level = logrus.DebugLevel
	}

	fetcher, err := fetch.New(cfg.SourceURL, cfg.Timeout)
	if err != nil {
		return err
	}
	cache := dataset.NewCache(cfg.CacheDir, cfg.CacheFile)

	a.cfg = cfg
	a.log = log
	a.explorer = explorer.New(cache, fetcher, log)
	log.WithFields(logrus.Fields{
		"source": cfg.SourceURL,
		"cache":  cfg.CachePath(),
	}).Debug("configuration loaded")
	return nil
}

// render saves a chart under the output directory and reports where.
func (a *app) render(cmd *cobra.Command, name string, build func() (*plot.Plot, error)) error {
	p, err := build()
	if err != nil {
		return err
	}
	path := filepath.Join(a.cfg.OutputDir, name)
	if err := chart.Save(p, chart.Inches(a.cfg.Chart.Width, a.cfg.Chart.Height), path); err != nil {
		return err
	}
	a.log.WithField("path", path).Info("chart saved")
	fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", path)
	return nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "_"), "_")
}

// newTable prints dataset column names as they are spelled in the file.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
}

func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the exit code. A
// failure is logged through the configured logger, or a default one when
// the failure happened before configuration was loaded.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{v: config.New()}
	rootCmd := newRoot(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	log := a.log
	if log == nil {
		log = logger.New(config.Logger{}, stderr)
	}
	log.WithError(err).Error("command failed")
	return 1
}
