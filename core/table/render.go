package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const renderPadding = 1

// Render writes the table as a bordered grid:
//
//	+-------+----------+
//	| Name  | Size     |
//	+-------+----------+
//	| a.txt | 10.00 KB |
//	+-------+----------+
//
// Column widths are the wider of the header and the widest cell, measured
// in display cells so wide runes line up. A table with no rows prints a
// single notice instead of an empty grid.
func Render(w io.Writer, t *Table) error {
	if t.NumRows() == 0 {
		_, err := fmt.Fprintln(w, "no data")
		return err
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col)
	}
	cells := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = make([]string, len(row))
		for c, v := range row {
			s := v.String()
			cells[r][c] = s
			if width := runewidth.StringWidth(s); width > widths[c] {
				widths[c] = width
			}
		}
	}

	border := gridBorder(widths)
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}
	if err := renderRow(w, t.columns, widths); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}
	for _, row := range cells {
		if err := renderRow(w, row, widths); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, border)
	return err
}

func renderRow(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteByte('|')
		b.WriteString(strings.Repeat(" ", renderPadding))
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+renderPadding))
	}
	b.WriteByte('|')
	_, err := fmt.Fprintln(w, b.String())
	return err
}

func gridBorder(widths []int) string {
	var b strings.Builder
	for _, width := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", width+2*renderPadding))
	}
	b.WriteByte('+')
	return b.String()
}
