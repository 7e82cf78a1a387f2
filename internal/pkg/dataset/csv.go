package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/yama6a/zip-tax-rates/internal/pkg/errors"
	"github.com/yama6a/zip-tax-rates/internal/pkg/model"
)

var _ Rows = &csvRows{}

type csvRows struct {
	reader     *csv.Reader
	skipHeader bool
	line       int
}

// NewCSVReader reads comma-separated rows. Every row must have as many fields as the
// first one, and at least two.
func NewCSVReader(r io.Reader, hasHeader bool) Rows {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	return &csvRows{reader: reader, skipHeader: hasHeader}
}

func (c *csvRows) Next() (model.RateRecord, error) {
	if c.skipHeader {
		c.skipHeader = false
		if _, err := c.read(); err != nil {
			return model.RateRecord{}, err
		}
	}

	fields, err := c.read()
	if err != nil {
		return model.RateRecord{}, err
	}

	return toRecord(fields, c.line)
}

func (c *csvRows) read() ([]string, error) {
	fields, err := c.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrMalformedRow, err)
	}
	c.line, _ = c.reader.FieldPos(0)

	return fields, nil
}

func toRecord(fields []string, line int) (model.RateRecord, error) {
	if len(fields) < 2 {
		return model.RateRecord{}, fmt.Errorf("%w: line %d has %d field(s), need at least 2",
			apperrors.ErrMalformedRow, line, len(fields))
	}

	return model.RateRecord{ZIP: model.ZIP(fields[0]), Rate: model.Rate(fields[1])}, nil
}
