// Package dataset reads ZIP code to tax rate tables.
//
// Column 0 holds the ZIP code and column 1 the rate. Cells are returned verbatim,
// so ZIP codes keep their leading zeros and rates keep their formatting.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yama6a/zip-tax-rates/internal/pkg/model"
)

//go:embed rates_by_zipcode.csv
var embeddedRates []byte

// Rows iterates over dataset records. Next returns io.EOF once all rows have been read.
type Rows interface {
	Next() (model.RateRecord, error)
}

// Open returns the rows of the dataset at path. An empty path selects the embedded dataset.
// Files ending in .xlsx are read as workbooks, everything else as CSV.
func Open(path string, hasHeader bool) (Rows, error) {
	if path == "" {
		return NewCSVReader(bytes.NewReader(embeddedRates), true), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return NewXLSXReader(bytes.NewReader(data), hasHeader)
	}

	return NewCSVReader(bytes.NewReader(data), hasHeader), nil
}
