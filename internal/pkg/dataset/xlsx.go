package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	apperrors "github.com/yama6a/zip-tax-rates/internal/pkg/errors"
	"github.com/yama6a/zip-tax-rates/internal/pkg/model"
)

var _ Rows = &xlsxRows{}

type xlsxRows struct {
	rows [][]string
	next int
}

// NewXLSXReader reads the first sheet of a workbook. Cells are taken as their
// formatted text, so a ZIP column formatted as text keeps its leading zeros.
func NewXLSXReader(r io.Reader, hasHeader bool) (Rows, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", apperrors.ErrMalformedRow, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %w", apperrors.ErrMalformedRow, sheets[0], err)
	}

	x := &xlsxRows{rows: rows}
	if hasHeader && len(rows) > 0 {
		x.next = 1
	}

	return x, nil
}

func (x *xlsxRows) Next() (model.RateRecord, error) {
	if x.next >= len(x.rows) {
		return model.RateRecord{}, io.EOF
	}
	row := x.rows[x.next]
	x.next++

	return toRecord(row, x.next)
}
