package table

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/csese/networkD3/pkg/errors"
)

// ReadCSV decodes CSV data into a Table. The first record is the header.
// Numeric cells are converted to float64; everything else stays a string.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed CSV")
	}

	return FromRecords(records)
}

// convertCell coerces a CSV cell to its natural Value type.
func convertCell(cell string) Value {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
