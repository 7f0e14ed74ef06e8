package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tabsh/tabsh/core/table"
)

// StageFunc transforms one table into its replacement. Implementations
// never mutate the input; the executor discards it once the replacement
// exists.
type StageFunc func(in *table.Table, args []string) (*table.Table, error)

// Stages maps each filter-stage name to its implementation.
var Stages = map[string]StageFunc{
	"where":    Where,
	"sort-by":  SortBy,
	"select":   Select,
	"contains": Contains,
	"limit":    Limit,
}

// Where keeps the rows for which "field op literal" holds. The literal is
// parsed against the column's runtime variant, so "10kb" works against
// size columns and "42" against integer ones. A malformed literal
// degrades to a zero value rather than failing the line.
func Where(in *table.Table, args []string) (*table.Table, error) {
	if len(args) != 3 {
		return nil, errArity("where", fmt.Sprintf("want field, operator and value, got %d arguments", len(args)))
	}
	field, op, literal := args[0], args[1], args[2]

	idx, ok := in.ColumnIndex(field)
	if !ok {
		return nil, errUnknownField("where", field)
	}
	if !table.IsOp(op) {
		return nil, errArity("where", fmt.Sprintf("unsupported operator %q", op))
	}

	out := table.New(in.Columns()...)
	for i := 0; i < in.NumRows(); i++ {
		row := in.Row(i)
		cell := row[idx]
		sign := table.Compare(cell, table.ParseLiteral(cell.Kind(), literal))
		if holds, _ := table.EvalOp(op, sign); holds {
			if err := out.AddRow(row...); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// SortBy reorders all rows by the named field. The sort is stable, so
// ties keep their original relative order. Direction defaults to
// ascending.
func SortBy(in *table.Table, args []string) (*table.Table, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, errArity("sort-by", fmt.Sprintf("want field and optional direction, got %d arguments", len(args)))
	}
	field := args[0]

	descending := false
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "asc":
		case "desc":
			descending = true
		default:
			return nil, errArity("sort-by", fmt.Sprintf("direction must be asc or desc, got %q", args[1]))
		}
	}

	idx, ok := in.ColumnIndex(field)
	if !ok {
		return nil, errUnknownField("sort-by", field)
	}

	order := make([]int, in.NumRows())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		sign := table.Compare(in.Row(order[i])[idx], in.Row(order[j])[idx])
		if descending {
			return sign > 0
		}
		return sign < 0
	})

	out := table.New(in.Columns()...)
	for _, i := range order {
		if err := out.AddRow(in.Row(i)...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Select projects the table onto the named columns, in the order given.
// Naming a column twice produces a duplicate output column.
func Select(in *table.Table, args []string) (*table.Table, error) {
	if len(args) == 0 {
		return nil, errArity("select", "want at least one field")
	}

	indices := make([]int, len(args))
	names := make([]string, len(args))
	cols := in.Columns()
	for i, field := range args {
		idx, ok := in.ColumnIndex(field)
		if !ok {
			return nil, errUnknownField("select", field)
		}
		indices[i] = idx
		names[i] = cols[idx]
	}

	out := table.New(names...)
	for r := 0; r < in.NumRows(); r++ {
		row := in.Row(r)
		cells := make([]table.Value, len(indices))
		for i, idx := range indices {
			cells[i] = row[idx]
		}
		if err := out.AddRow(cells...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Contains keeps the rows whose named cell contains the substring,
// case-insensitively. An empty or omitted substring matches every row.
func Contains(in *table.Table, args []string) (*table.Table, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, errArity("contains", fmt.Sprintf("want field and substring, got %d arguments", len(args)))
	}
	field := args[0]
	pattern := ""
	if len(args) == 2 {
		pattern = strings.ToLower(args[1])
	}

	idx, ok := in.ColumnIndex(field)
	if !ok {
		return nil, errUnknownField("contains", field)
	}

	out := table.New(in.Columns()...)
	for i := 0; i < in.NumRows(); i++ {
		row := in.Row(i)
		if strings.Contains(strings.ToLower(row[idx].String()), pattern) {
			if err := out.AddRow(row...); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Limit keeps at most the first n rows. Negative or malformed counts
// clamp to zero; a count beyond the row count keeps everything.
func Limit(in *table.Table, args []string) (*table.Table, error) {
	if len(args) != 1 {
		return nil, errArity("limit", fmt.Sprintf("want a row count, got %d arguments", len(args)))
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		n = 0
	}
	if n > in.NumRows() {
		n = in.NumRows()
	}

	out := table.New(in.Columns()...)
	for i := 0; i < n; i++ {
		if err := out.AddRow(in.Row(i)...); err != nil {
			return nil, err
		}
	}
	return out, nil
}
