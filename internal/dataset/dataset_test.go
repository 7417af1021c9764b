package dataset

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
)

const sample = `Entity,Year,output_quantity,crop_output_quantity,animal_output_quantity,fertilizer_quantity,tfp
Chad,2000,10,6,4,1.5,100
Chad,2001,12,7,,2,101
Peru,2000,20,15,5,3,99
`

func TestRead(t *testing.T) {
	df, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if df.Nrow() != 3 || df.Ncol() != 7 {
		t.Fatalf("expected 3x7, but got %dx%d", df.Nrow(), df.Ncol())
	}
	if typ := df.Col(EntityColumn).Type(); typ != series.String {
		t.Errorf("expected Entity string, but got %s", typ)
	}
	if typ := df.Col(YearColumn).Type(); typ != series.Int {
		t.Errorf("expected Year int, but got %s", typ)
	}
	animal := df.Col("animal_output_quantity").Float()
	if !math.IsNaN(animal[1]) {
		t.Errorf("expected NaN for empty cell, but got %v", animal[1])
	}
	if animal[0] != 4 {
		t.Errorf("expected 4, but got %v", animal[0])
	}
}

func TestRead_BOM(t *testing.T) {
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte(sample)...)
	df, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !HasColumn(df, EntityColumn) {
		t.Errorf("expected Entity column after BOM, but got %v", df.Names())
	}
}

func TestRead_MissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Country,Year\nChad,2000\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, but got %v", err)
	}
}

func TestColumns(t *testing.T) {
	df, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantQ := []string{"output_quantity", "crop_output_quantity", "animal_output_quantity", "fertilizer_quantity"}
	if got := QuantityColumns(df); !reflect.DeepEqual(got, wantQ) {
		t.Errorf("expected %v, but got %v", wantQ, got)
	}
	wantO := []string{"crop_output_quantity", "animal_output_quantity"}
	if got := OutputColumns(df); !reflect.DeepEqual(got, wantO) {
		t.Errorf("expected %v, but got %v", wantO, got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	df, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if df.Nrow() != 3 {
		t.Errorf("expected 3 rows, but got %d", df.Nrow())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file, but got nil")
	}
}
