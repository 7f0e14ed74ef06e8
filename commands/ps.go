package commands

import (
	"sort"

	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/table"
)

// Ps snapshots the system process list as a PID/Name/Memory/Threads
// table. PID and Threads are integer cells; Memory is a size cell built
// from the resident set, so the pipeline compares it by bytes.
func Ps(p *proc.Proc) (*table.Table, error) {
	list := p.Processes
	if list == nil {
		list = SystemProcesses
	}

	procs, err := list()
	if err != nil {
		return nil, err
	}
	sort.Slice(procs, func(i, j int) bool {
		return procs[i].PID < procs[j].PID
	})

	t := table.New("PID", "Name", "Memory", "Threads")
	for _, info := range procs {
		if err := t.AddRow(
			table.IntValue(info.PID),
			table.TextValue(info.Name),
			table.SizeFromBytes(info.RSS),
			table.IntValue(info.Threads),
		); err != nil {
			return nil, err
		}
	}
	return t, nil
}

var _ ProducerFunc = Ps

func init() {
	mustAddProducer("ps", Ps)
}
