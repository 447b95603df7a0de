// Package table provides the tabular input boundary for networkD3.
//
// A Table is an ordered collection of rows with named columns. It is the
// explicit, discriminated form of "tabular input": anything that reaches the
// graph constructors as a *Table has already been shape-checked once at
// construction, so no runtime type inspection happens downstream.
//
// Row order is significant. When links reference nodes positionally, the row
// index in the nodes table is the node identity.
package table

import (
	"github.com/csese/networkD3/pkg/errors"
)

// Value is a single table cell. Cells are dynamically typed: string, float64,
// bool, or nil. CSV ingestion produces string and float64 cells; JSON
// ingestion may additionally produce bool and nil.
type Value = any

// Table is an ordered collection of rows with named columns.
// The zero value is not usable; construct with [New] or [FromRecords].
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates a Table from column names and rows.
// Every row must have exactly len(columns) cells; a ragged row fails with
// INVALID_INPUT and nothing is constructed.
func New(columns []string, rows [][]Value) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "table must have at least one column")
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "column %d has an empty name", i)
		}
		if _, dup := index[c]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate column name %q", c)
		}
		index[c] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}

	return &Table{columns: columns, index: index, rows: rows}, nil
}

// FromRecords creates a Table from CSV-shaped records: the first record is
// the header, the rest are data rows. Cells that parse as numbers are stored
// as float64 so that value, size, and index columns come out numeric.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "records must include a header row")
	}

	columns := records[0]
	rows := make([][]Value, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]Value, len(rec))
		for i, cell := range rec {
			row[i] = convertCell(cell)
		}
		rows = append(rows, row)
	}

	return New(columns, rows)
}

// Columns returns the column names in declaration order.
// The returned slice must not be modified.
func (t *Table) Columns() []string { return t.columns }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the ordered cell sequence for the named column.
// A name that does not exist fails with MISSING_COLUMN at lookup time.
func (t *Table) Column(name string) ([]Value, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingColumn, "no column named %q", name)
	}

	cells := make([]Value, len(t.rows))
	for r, row := range t.rows {
		cells[r] = row[i]
	}
	return cells, nil
}

// Row returns the cells of row i. The returned slice must not be modified.
func (t *Table) Row(i int) []Value { return t.rows[i] }
