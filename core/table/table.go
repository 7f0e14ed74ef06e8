// Package table implements the typed tabular data model behind tabsh's
// structured pipelines: tagged cell values, the table container, size
// parsing, type-aware comparison and grid rendering.
package table

import (
	"fmt"
	"strings"
)

// Table is an ordered list of column names plus the rows beneath them.
// Every row has exactly one cell per column.
//
// A Table exclusively owns its rows. Pipeline stages never mutate the
// Table they receive; each builds a replacement and the executor drops
// the old one.
type Table struct {
	columns []string
	rows    [][]Value
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumColumns returns the column count.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Row returns the cells of row i in column order. The returned slice is
// owned by the table and must not be modified.
func (t *Table) Row(i int) []Value {
	return t.rows[i]
}

// AddRow appends one row. The cell count must match the column count.
func (t *Table) AddRow(cells ...Value) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, append([]Value(nil), cells...))
	return nil
}

// ColumnIndex finds a column by name, case-insensitively.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.columns {
		if strings.EqualFold(col, name) {
			return i, true
		}
	}
	return 0, false
}
