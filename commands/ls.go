package commands

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/table"
)

// Modification times sort the same lexicographically and chronologically
// in this layout, which keeps sort-by Date meaningful.
const lsDateFormat = "2006-01-02 15:04"

// Ls lists a directory as a Name/Size/Kind/Date table. The Size column
// carries formatted byte counts that the pipeline compares by magnitude.
func Ls(p *proc.Proc) (*table.Table, error) {
	opts := getopt.New()
	listAll := opts.Bool('a', "don't ignore entries starting with .")
	if err := opts.Getopt(p.Args, nil); err != nil {
		return nil, err
	}

	dir := "."
	switch rest := opts.Args(); len(rest) {
	case 0:
	case 1:
		dir = rest[0]
	default:
		return nil, fmt.Errorf("too many arguments")
	}

	infos, err := afero.ReadDir(p.FS, p.Abs(dir))
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	t := table.New("Name", "Size", "Kind", "Date")
	for _, fi := range infos {
		if !*listAll && strings.HasPrefix(fi.Name(), ".") {
			continue
		}
		if err := t.AddRow(
			table.TextValue(fi.Name()),
			table.SizeFromBytes(fi.Size()),
			table.TextValue(fileKind(fi)),
			table.TextValue(fi.ModTime().Format(lsDateFormat)),
		); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func fileKind(fi os.FileInfo) string {
	switch {
	case fi.IsDir():
		return "dir"
	case path.Ext(fi.Name()) != "":
		return strings.TrimPrefix(path.Ext(fi.Name()), ".")
	default:
		return "file"
	}
}

var _ ProducerFunc = Ls

func init() {
	mustAddProducer("ls", Ls)
}
