// Package dataset loads the cached agricultural productivity CSV into a
// dataframe and knows the column naming conventions of that file.
package dataset

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

const (
	EntityColumn = "Entity"
	YearColumn   = "Year"

	// QuantitySuffix ends the name of every quantity measure.
	QuantitySuffix = "_quantity"
	// OutputMarker appears inside the name of every output measure.
	OutputMarker = "_output_"
)

// ErrMissingColumn is returned when the file lacks the identifier or the
// temporal column.
var ErrMissingColumn = errors.New("missing required column")

var bom = []byte{0xef, 0xbb, 0xbf}

// Read parses CSV with the first row as header. Column types are inferred,
// except Entity (string) and Year (int).
func Read(r io.Reader) (dataframe.DataFrame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "reading csv")
	}
	data = bytes.TrimPrefix(data, bom)

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{"", "NA", "NaN", "<nil>"}),
		dataframe.WithTypes(map[string]series.Type{
			EntityColumn: series.String,
			YearColumn:   series.Int,
		}),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "parsing csv")
	}
	for _, name := range []string{EntityColumn, YearColumn} {
		if !HasColumn(df, name) {
			return dataframe.DataFrame{}, errors.Wrapf(ErrMissingColumn, "%q", name)
		}
	}
	return df, nil
}

// Load reads the file at path.
func Load(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "opening data file")
	}
	defer func() { _ = file.Close() }()
	return Read(file)
}

func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// QuantityColumns lists the columns ending in QuantitySuffix, in file order.
func QuantityColumns(df dataframe.DataFrame) []string {
	return columnsWhere(df, func(name string) bool {
		return strings.HasSuffix(name, QuantitySuffix)
	})
}

// OutputColumns lists the columns containing OutputMarker, in file order.
func OutputColumns(df dataframe.DataFrame) []string {
	return columnsWhere(df, func(name string) bool {
		return strings.Contains(name, OutputMarker)
	})
}

func columnsWhere(df dataframe.DataFrame, keep func(string) bool) []string {
	var cols []string
	for _, name := range df.Names() {
		if keep(name) {
			cols = append(cols, name)
		}
	}
	return cols
}
