// Package explorer holds the agricultural productivity dataset and computes
// the data behind each chart. Rendering lives elsewhere; every view here
// returns plain values.
package explorer

import (
	"context"
	"io"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"agriexplorer/internal/dataset"
	"agriexplorer/internal/fetch"
)

// World selects the aggregate over every row of the dataset.
const World = "World"

type Explorer struct {
	cache   *dataset.Cache
	fetcher fetch.Fetcher
	log     *logrus.Logger

	mu sync.Mutex
	df *dataframe.DataFrame
}

func New(cache *dataset.Cache, fetcher fetch.Fetcher, log *logrus.Logger) *Explorer {
	return &Explorer{
		cache:   cache,
		fetcher: fetcher,
		log:     log,
	}
}

// EnsureLoaded downloads the source file if the cache is empty and parses it
// into memory. A failed download is logged and leaves the dataset unset; the
// next view then reports ErrDataUnavailable. Once loaded, further calls do
// nothing.
func (e *Explorer) EnsureLoaded(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.df != nil {
		return nil
	}

	path := e.cache.Path()
	ok, err := e.cache.Exists()
	if err != nil {
		return withKind(ErrDataUnavailable, err)
	}
	if ok {
		e.log.WithField("path", path).Debug("data file already exists")
	} else {
		e.log.WithField("path", path).Info("downloading data file")
		err := e.cache.Fill(func(w io.Writer) error {
			return e.fetcher.Fetch(ctx, w)
		})
		if err != nil {
			e.log.WithError(err).Error("unable to download data file")
			return nil
		}
	}

	df, err := dataset.Load(path)
	if err != nil {
		if errors.Is(err, dataset.ErrMissingColumn) {
			return withKind(ErrConfiguration, err)
		}
		return withKind(ErrDataUnavailable, err)
	}
	e.log.WithFields(logrus.Fields{
		"rows":    df.Nrow(),
		"columns": df.Ncol(),
	}).Info("data file loaded")
	e.df = &df
	return nil
}

// Loaded reports whether the dataset is in memory.
func (e *Explorer) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.df != nil
}

func (e *Explorer) table(ctx context.Context) (dataframe.DataFrame, error) {
	if err := e.EnsureLoaded(ctx); err != nil {
		return dataframe.DataFrame{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.df == nil {
		return dataframe.DataFrame{}, errors.Wrap(ErrDataUnavailable, "download failed")
	}
	return *e.df, nil
}

// Countries lists the distinct entities in order of first appearance.
func (e *Explorer) Countries(ctx context.Context) ([]string, error) {
	df, err := e.table(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(df.Col(dataset.EntityColumn).Records()), nil
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func countrySet(df dataframe.DataFrame) map[string]bool {
	set := make(map[string]bool)
	for _, c := range df.Col(dataset.EntityColumn).Records() {
		set[c] = true
	}
	return set
}

func validateCountry(name string) error {
	if name != "" && strings.TrimSpace(name) == "" {
		return errors.Wrapf(ErrInvalidArgument, "country %q is blank", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.Wrapf(ErrInvalidArgument, "country %q contains control characters", name)
		}
	}
	return nil
}

func rowsOf(df dataframe.DataFrame, country string) dataframe.DataFrame {
	return df.Filter(dataframe.F{
		Colname:    dataset.EntityColumn,
		Comparator: series.Eq,
		Comparando: country,
	})
}

// yearly sums each column per year. Missing cells count as zero; rows with no
// year are skipped. Years come back ascending with one value per column each.
func yearly(df dataframe.DataFrame, cols []string) ([]int, map[string][]float64) {
	rawYears := df.Col(dataset.YearColumn).Float()
	seen := make(map[int]float64)
	for _, y := range rawYears {
		if !math.IsNaN(y) {
			seen[int(y)] = 0
		}
	}
	years := getSortedYears(seen)
	index := make(map[int]int, len(years))
	for i, year := range years {
		index[year] = i
	}

	out := make(map[string][]float64, len(cols))
	for _, col := range cols {
		sums := make([]float64, len(years))
		values := df.Col(col).Float()
		for i, y := range rawYears {
			if math.IsNaN(y) || math.IsNaN(values[i]) {
				continue
			}
			sums[index[int(y)]] += values[i]
		}
		out[col] = sums
	}
	return years, out
}

func getSortedYears(yearlyData map[int]float64) []int {
	years := make([]int, 0, len(yearlyData))
	for year := range yearlyData {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
