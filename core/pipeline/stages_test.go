package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabsh/tabsh/core/table"
)

// fileTable builds the listing used across the stage tests.
func fileTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New("Name", "Size")
	for _, row := range []struct {
		name string
		size string
	}{
		{"a.txt", "10.00 KB"},
		{"b.log", "2.00 MB"},
		{"c.log", "500.00 KB"},
	} {
		require.NoError(t, tbl.AddRow(table.TextValue(row.name), table.SizeValue(row.size)))
	}
	return tbl
}

func names(tbl *table.Table) []string {
	var out []string
	idx, _ := tbl.ColumnIndex("Name")
	for i := 0; i < tbl.NumRows(); i++ {
		out = append(out, tbl.Row(i)[idx].Text())
	}
	return out
}

func TestWhere(t *testing.T) {
	t.Run("size comparison is by magnitude", func(t *testing.T) {
		out, err := Where(fileTable(t), []string{"Size", ">", "1MB"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b.log"}, names(out))
	})

	t.Run("columns are preserved", func(t *testing.T) {
		out, err := Where(fileTable(t), []string{"Size", ">", "100kb"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Size"}, out.Columns())
		assert.Equal(t, []string{"b.log", "c.log"}, names(out))
	})

	t.Run("equality on text is case-insensitive", func(t *testing.T) {
		out, err := Where(fileTable(t), []string{"Name", "==", "A.TXT"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt"}, names(out))
	})

	t.Run("malformed literal filters against zero instead of failing", func(t *testing.T) {
		out, err := Where(fileTable(t), []string{"Size", ">", "garbage"})
		require.NoError(t, err)
		assert.Equal(t, 3, out.NumRows(), "every size exceeds zero")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Where(fileTable(t), []string{"Bogus", ">", "1"})
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, UnknownField, perr.Kind)
		assert.Equal(t, "where", perr.Stage)
	})

	t.Run("unsupported operator", func(t *testing.T) {
		_, err := Where(fileTable(t), []string{"Size", "!=", "1"})
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ArityMismatch, perr.Kind)
	})

	t.Run("never grows the table", func(t *testing.T) {
		in := fileTable(t)
		out, err := Where(in, []string{"Size", ">=", "0"})
		require.NoError(t, err)
		assert.LessOrEqual(t, out.NumRows(), in.NumRows())
	})
}

func TestSortBy(t *testing.T) {
	t.Run("ascending by byte size", func(t *testing.T) {
		out, err := SortBy(fileTable(t), []string{"Size", "asc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "c.log", "b.log"}, names(out))
	})

	t.Run("descending", func(t *testing.T) {
		out, err := SortBy(fileTable(t), []string{"Size", "desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b.log", "c.log", "a.txt"}, names(out))
	})

	t.Run("direction defaults to ascending", func(t *testing.T) {
		out, err := SortBy(fileTable(t), []string{"Name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.log", "c.log"}, names(out))
	})

	t.Run("ties keep their original relative order", func(t *testing.T) {
		tbl := table.New("Name", "Size")
		for _, name := range []string{"first", "second", "third"} {
			require.NoError(t, tbl.AddRow(table.TextValue(name), table.SizeValue("1.00 KB")))
		}
		out, err := SortBy(tbl, []string{"Size", "asc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, names(out))
	})

	t.Run("row count is unchanged", func(t *testing.T) {
		out, err := SortBy(fileTable(t), []string{"Size"})
		require.NoError(t, err)
		assert.Equal(t, 3, out.NumRows())
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := SortBy(fileTable(t), []string{"Size", "sideways"})
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ArityMismatch, perr.Kind)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := SortBy(fileTable(t), []string{"Bogus"})
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, UnknownField, perr.Kind)
	})
}

func TestSelect(t *testing.T) {
	t.Run("projects in the order given", func(t *testing.T) {
		out, err := Select(fileTable(t), []string{"Size", "Name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Size", "Name"}, out.Columns())
		assert.Equal(t, 3, out.NumRows())
	})

	t.Run("idempotent on an already-minimal column set", func(t *testing.T) {
		once, err := Select(fileTable(t), []string{"Name", "Size"})
		require.NoError(t, err)
		twice, err := Select(once, []string{"Name", "Size"})
		require.NoError(t, err)
		assert.Equal(t, once.Columns(), twice.Columns())
		assert.Equal(t, names(once), names(twice))
	})

	t.Run("duplicates produce duplicate columns", func(t *testing.T) {
		out, err := Select(fileTable(t), []string{"Name", "Name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Name"}, out.Columns())
		row := out.Row(0)
		assert.Equal(t, row[0], row[1])
	})

	t.Run("field lookup is case-insensitive but keeps declared names", func(t *testing.T) {
		out, err := Select(fileTable(t), []string{"name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Name"}, out.Columns())
	})

	t.Run("unknown field never silently drops", func(t *testing.T) {
		_, err := Select(fileTable(t), []string{"Name", "Bogus"})
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, UnknownField, perr.Kind)
		assert.Equal(t, "select", perr.Stage)
	})
}

func TestContains(t *testing.T) {
	t.Run("substring match is case-insensitive", func(t *testing.T) {
		out, err := Contains(fileTable(t), []string{"Name", "LOG"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b.log", "c.log"}, names(out))
	})

	t.Run("empty pattern matches every row in order", func(t *testing.T) {
		out, err := Contains(fileTable(t), []string{"Name", ""})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.log", "c.log"}, names(out))
	})

	t.Run("omitted pattern matches every row", func(t *testing.T) {
		out, err := Contains(fileTable(t), []string{"Name"})
		require.NoError(t, err)
		assert.Equal(t, 3, out.NumRows())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Contains(fileTable(t), []string{"Bogus", "log"})
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, UnknownField, perr.Kind)
	})
}

func TestLimit(t *testing.T) {
	t.Run("keeps the first n rows", func(t *testing.T) {
		out, err := Limit(fileTable(t), []string{"2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.log"}, names(out))
	})

	t.Run("zero keeps columns and drops rows", func(t *testing.T) {
		out, err := Limit(fileTable(t), []string{"0"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Size"}, out.Columns())
		assert.Equal(t, 0, out.NumRows())
	})

	t.Run("negative clamps to zero", func(t *testing.T) {
		out, err := Limit(fileTable(t), []string{"-3"})
		require.NoError(t, err)
		assert.Equal(t, 0, out.NumRows())
	})

	t.Run("count beyond the rows keeps everything", func(t *testing.T) {
		out, err := Limit(fileTable(t), []string{"100"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.log", "c.log"}, names(out))
	})

	t.Run("malformed count clamps to zero", func(t *testing.T) {
		out, err := Limit(fileTable(t), []string{"lots"})
		require.NoError(t, err)
		assert.Equal(t, 0, out.NumRows())
	})
}
