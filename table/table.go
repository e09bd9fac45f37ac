// Package table converts between the 2D value grids returned by the
// Sheets API and a header-addressed table representation. It is pure
// and never touches the network.
package table

import (
	"fmt"
)

// Table holds tabular data with a header row. Rows are stored without
// the header and are padded to the header width.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New creates a table with the given headers and no rows.
func New(headers ...string) *Table {
	return &Table{Headers: headers}
}

// FromRecords builds a Table from a raw value grid, treating the first
// row as the header row. Ragged rows are padded with empty cells; cells
// beyond the header width are kept by widening the table. An empty grid
// yields an empty table.
func FromRecords(records [][]any) *Table {
	if len(records) == 0 {
		return &Table{}
	}

	headers := make([]string, len(records[0]))
	for i, cell := range records[0] {
		headers[i] = cellString(cell)
	}

	width := len(headers)
	for _, rec := range records[1:] {
		if len(rec) > width {
			width = len(rec)
		}
	}
	for len(headers) < width {
		headers = append(headers, "")
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, width)
		for i, cell := range rec {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}
}

// Records returns the table as a value grid suitable for a range
// update: the header row followed by every data row.
func (t *Table) Records() [][]any {
	records := make([][]any, 0, len(t.Rows)+1)

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	records = append(records, header)

	for _, row := range t.Rows {
		rec := make([]any, len(row))
		for i, cell := range row {
			rec[i] = cell
		}
		records = append(records, rec)
	}
	return records
}

// AppendRow adds a data row, padding or widening as needed.
func (t *Table) AppendRow(cells ...string) {
	for len(t.Headers) < len(cells) {
		t.Headers = append(t.Headers, "")
	}
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Column returns the values of the named header column.
func (t *Table) Column(name string) ([]string, error) {
	idx := -1
	for i, h := range t.Headers {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no column named %q (headers: %v)", name, t.Headers)
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, nil
}

// NumRows returns the number of data rows (header excluded).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the table width.
func (t *Table) NumCols() int {
	return len(t.Headers)
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
